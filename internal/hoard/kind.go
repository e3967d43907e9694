package hoard

import "loot-arena/internal/registry"

// Kind classifies possessions. It doubles as the registry kind so each family
// draws identities from its own counter.
type Kind = registry.Kind

const (
	KindWeapon Kind = iota + 1
	KindArmor
	KindBackpack
	KindPurse
)

// KindName returns a lower-case label for k.
func KindName(k Kind) string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	case KindBackpack:
		return "backpack"
	case KindPurse:
		return "purse"
	default:
		return "unknown"
	}
}

// identityRules lists how each kind numbers its possessions.
// Weapons and purses are unique; armor and backpacks may share an id.
var identityRules = map[Kind]registry.Rule{
	KindWeapon:   {Sequence: registry.Multiples(6), Unique: true},
	KindArmor:    {Sequence: registry.Primes()},
	KindBackpack: {Sequence: registry.Counter()},
	KindPurse:    {Sequence: registry.Fibonacci(), Unique: true},
}
