package hoard

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func kg(v float64) measure.Weight { return measure.Of(v, measure.Kilogram) }

func newTestForge() *Forge { return NewForge(registry.New(), nil) }

func mustWeapon(t *testing.T, f *Forge, weight float64) *Weapon {
	t.Helper()
	w, err := f.NewWeapon(registry.NilID, kg(weight), 10, 20)
	require.NoError(t, err)
	return w
}

func mustArmor(t *testing.T, f *Forge, weight float64, protection int) *Armor {
	t.Helper()
	a, err := f.NewArmor(registry.NilID, kg(weight), protection, 50)
	require.NoError(t, err)
	return a
}

func mustBackpack(t *testing.T, f *Forge, weight, capacity float64) *Backpack {
	t.Helper()
	b, err := f.NewBackpack(registry.NilID, kg(weight), kg(capacity), 5)
	require.NoError(t, err)
	return b
}

func mustPurse(t *testing.T, f *Forge, threshold ducat.Ducat) *Purse {
	t.Helper()
	p, err := f.NewPurse(kg(0.1), threshold)
	require.NoError(t, err)
	return p
}

func mustHero(t *testing.T, name string, strength float64, hp int) *Creature {
	t.Helper()
	h, err := NewHero(name, strength, hp)
	require.NoError(t, err)
	return h
}

func mustMonster(t *testing.T, name string, hp int, anchors ...string) *Creature {
	t.Helper()
	if len(anchors) == 0 {
		anchors = []string{"claw", "hide"}
	}
	m, err := NewMonster(name, 20, hp, 5, 10, anchors)
	require.NoError(t, err)
	return m
}

func used(t *testing.T, c Container) float64 {
	t.Helper()
	u, err := c.UsedCapacity(measure.Kilogram)
	require.NoError(t, err)
	return u
}

// requireExactIndex checks that every container in the tree under c indexes
// exactly its transitive contents.
func requireExactIndex(t *testing.T, c Container) {
	t.Helper()
	v := c.contents()
	want := make(map[Possession]int)
	for _, p := range v.members() {
		want[p]++
	}
	got := make(map[Possession]int)
	for key, list := range v.index {
		require.NotEmpty(t, list, "empty index bucket %+v in container %d", key, c.ID())
		for _, p := range list {
			require.Equal(t, key, identOf(p))
			got[p]++
		}
	}
	require.Len(t, got, len(want), "index size of container %d", c.ID())
	for p, n := range want {
		require.Equal(t, n, got[p], "%s %d in container %d", KindName(p.Kind()), p.ID(), c.ID())
	}
	for _, e := range v.entries {
		if k, ok := e.(Container); ok {
			requireExactIndex(t, k)
		}
	}
}

// snapshot copies a container's index for later comparison.
func snapshot(c Container) map[Ident][]Possession {
	out := make(map[Ident][]Possession, len(c.contents().index))
	for key, list := range c.contents().index {
		out[key] = slices.Clone(list)
	}
	return out
}
