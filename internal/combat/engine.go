// Package combat resolves strikes between creatures and redistributes a
// killed creature's possessions to its victor.
package combat

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/samber/oops"

	"loot-arena/internal/hoard"
)

// ErrStalemate is returned by Bout.Run when neither creature dies within the turn limit.
var ErrStalemate = errors.New("bout reached its turn limit")

// Category groups loot for the weighted draw.
type Category uint8

const (
	CategoryCurrency Category = iota
	CategoryWeapon
	CategoryArmor
	CategoryContainer
	numCategories
)

func (c Category) String() string {
	switch c {
	case CategoryCurrency:
		return "currency"
	case CategoryWeapon:
		return "weapon"
	case CategoryArmor:
		return "armor"
	case CategoryContainer:
		return "container"
	}
	return "unknown"
}

// Tuning holds the engine's numeric knobs.
type Tuning struct {
	// RollMax is the top of the uniform strike roll [0, RollMax].
	RollMax int
	// LootDraws is the number of draws made from a killed creature.
	LootDraws int
	// Weights is the relative chance of each loot category, indexed by Category.
	Weights [numCategories]int
	// MaxTurns bounds a bout.
	MaxTurns int
}

// DefaultTuning returns the standard arena rules.
func DefaultTuning() Tuning {
	return Tuning{
		RollMax:   100,
		LootDraws: 5,
		Weights:   [numCategories]int{40, 30, 20, 10},
		MaxTurns:  1000,
	}
}

// withDefaults fills zero or negative knobs from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.RollMax <= 0 {
		t.RollMax = d.RollMax
	}
	if t.LootDraws <= 0 {
		t.LootDraws = d.LootDraws
	}
	if t.MaxTurns <= 0 {
		t.MaxTurns = d.MaxTurns
	}
	sum := 0
	for i, w := range t.Weights {
		if w < 0 {
			t.Weights[i] = 0
		}
		sum += t.Weights[i]
	}
	if sum == 0 {
		t.Weights = d.Weights
	}
	return t
}

// Engine resolves strikes. All randomness comes from rng, so a seeded
// source reproduces a fight exactly.
type Engine struct {
	rng    *rand.Rand
	logger *slog.Logger
	tuning Tuning
}

// defaultSeed seeds the source of an engine built without one.
const defaultSeed = 1

// New creates an engine. A nil rng is replaced by a source seeded with
// defaultSeed; a nil logger discards output.
func New(rng *rand.Rand, logger *slog.Logger, t Tuning) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{rng: rng, logger: logger, tuning: t.withDefaults()}
}

// Tuning returns the rules in effect.
func (e *Engine) Tuning() Tuning { return e.tuning }

// StrikeResult holds the outcome of one strike.
type StrikeResult struct {
	Attacker   string
	Defender   string
	Roll       int
	Protection int
	Hit        bool
	Damage     int
	Hitpoints  int // defender's hit points after the strike
	Killed     bool
	Recovered  int // hit points the attacker regained after a kill
	Loot       *LootReport
}

func fail(kind error, kv []any, format string, args ...any) error {
	return oops.In("combat").With(kv...).Wrapf(kind, format, args...)
}

// Strike resolves one strike from attacker against defender.
// A hit needs a roll of at least the defender's protection and takes off
// the attacker's damage. Reaching zero hit points kills the defender and
// hands its possessions to the looting step before the result is returned.
func (e *Engine) Strike(attacker, defender *hoard.Creature) (StrikeResult, error) {
	return e.strike(e.logger, attacker, defender)
}

func (e *Engine) strike(logger *slog.Logger, attacker, defender *hoard.Creature) (StrikeResult, error) {
	if attacker == nil || attacker.Killed() {
		return StrikeResult{}, fail(hoard.ErrDeadActor, nil, "a killed creature cannot strike")
	}
	atkName, _ := attacker.Name()
	if !attacker.CanTarget(defender) {
		return StrikeResult{}, fail(hoard.ErrIllegalTarget, []any{"attacker", atkName},
			"%s cannot strike that target", atkName)
	}
	defName, _ := defender.Name()
	prot, err := defender.Protection()
	if err != nil {
		return StrikeResult{}, err
	}

	res := StrikeResult{Attacker: atkName, Defender: defName, Protection: prot}
	res.Roll = e.rng.Intn(e.tuning.RollMax + 1)
	if res.Roll < prot {
		res.Hitpoints, _ = defender.Hitpoints()
		logger.Debug("strike missed", "attacker", atkName, "defender", defName, "roll", res.Roll, "protection", prot)
		return res, nil
	}

	dmg, err := attacker.Damage()
	if err != nil {
		return StrikeResult{}, err
	}
	hp, err := defender.TakeDamage(dmg)
	if err != nil {
		return StrikeResult{}, err
	}
	res.Hit, res.Damage, res.Hitpoints = true, dmg, hp
	logger.Debug("strike hit", "attacker", atkName, "defender", defName, "roll", res.Roll, "damage", dmg, "hp", hp)
	if !defender.Killed() {
		return res, nil
	}

	res.Killed = true
	logger.Info("creature killed", "victor", atkName, "loser", defName)
	report := e.loot(logger, attacker, defender)
	res.Loot = &report
	res.Recovered, err = attacker.Recover(e.rng.Float64())
	if err != nil {
		return res, err
	}
	if res.Recovered > 0 {
		logger.Info("victor recovered", "creature", atkName, "hp", res.Recovered)
	}
	return res, nil
}
