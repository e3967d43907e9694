package combat

import (
	"errors"
	"math/rand"
	"testing"

	"loot-arena/internal/ducat"
	"loot-arena/internal/hoard"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

func newEngine(seed int64, t Tuning) *Engine {
	return New(rand.New(rand.NewSource(seed)), nil, t)
}

func makeHero(t *testing.T, name string, strength float64, hp int) *hoard.Creature {
	t.Helper()
	h, err := hoard.NewHero(name, strength, hp)
	if err != nil {
		t.Fatalf("NewHero(%q): %v", name, err)
	}
	return h
}

func makeMonster(t *testing.T, name string, hp, damage, skin int) *hoard.Creature {
	t.Helper()
	m, err := hoard.NewMonster(name, 20, hp, damage, skin, []string{"claw", "hide"})
	if err != nil {
		t.Fatalf("NewMonster(%q): %v", name, err)
	}
	return m
}

func makeWeapon(t *testing.T, f *hoard.Forge, value ducat.Ducat) *hoard.Weapon {
	t.Helper()
	w, err := f.NewWeapon(registry.NilID, measure.Of(1, measure.Kilogram), 5, value)
	if err != nil {
		t.Fatalf("NewWeapon: %v", err)
	}
	return w
}

func makeBackpack(t *testing.T, f *hoard.Forge) *hoard.Backpack {
	t.Helper()
	b, err := f.NewBackpack(registry.NilID, measure.Of(1, measure.Kilogram), measure.Of(40, measure.Kilogram), 3)
	if err != nil {
		t.Fatalf("NewBackpack: %v", err)
	}
	return b
}

func kill(t *testing.T, c *hoard.Creature) {
	t.Helper()
	hp, err := c.Hitpoints()
	if err != nil {
		t.Fatalf("Hitpoints: %v", err)
	}
	if _, err := c.TakeDamage(hp); err != nil {
		t.Fatalf("TakeDamage: %v", err)
	}
}

func stackTotal(c *hoard.Creature) ducat.Ducat {
	var sum ducat.Ducat
	for _, s := range c.Stacks() {
		sum += s.Amount
	}
	return sum
}

func TestStrikeMissesAboveRollMax(t *testing.T) {
	e := newEngine(42, Tuning{})
	hero := makeHero(t, "Aragorn", 14, 30)
	golem := makeMonster(t, "Golem", 50, 1, 101)

	for i := 0; i < 50; i++ {
		res, err := e.Strike(hero, golem)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if res.Hit || res.Roll > 100 {
			t.Fatalf("iteration %d: expected a miss with roll in [0,100]; got %+v", i, res)
		}
		if res.Hitpoints != 50 {
			t.Fatalf("iteration %d: hit points changed on a miss: %d", i, res.Hitpoints)
		}
	}
}

func TestStrikeHitsZeroProtection(t *testing.T) {
	e := newEngine(7, Tuning{})
	hero := makeHero(t, "Aragorn", 10, 30) // damage floors at 1
	slug := makeMonster(t, "Slug", 1000, 1, 0)

	for i := 0; i < 20; i++ {
		res, err := e.Strike(hero, slug)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Hit || res.Damage != 1 {
			t.Fatalf("iteration %d: expected a 1-damage hit; got %+v", i, res)
		}
	}
	if hp, _ := slug.Hitpoints(); hp != 980 {
		t.Errorf("expected 980 hp after 20 hits; got %d", hp)
	}
}

func TestStrikeClampsAtZero(t *testing.T) {
	e := newEngine(1, Tuning{})
	troll := makeMonster(t, "Troll", 10, 50, 0)
	hero := makeHero(t, "Frodo", 5, 3)

	var last StrikeResult
	for i := 0; i < 100 && !hero.Killed(); i++ {
		res, err := e.Strike(troll, hero)
		if err != nil {
			t.Fatal(err)
		}
		last = res
	}
	if !last.Killed || last.Hitpoints != 0 || last.Damage != 50 {
		t.Fatalf("expected a killing 50-damage hit clamped to 0 hp; got %+v", last)
	}
	if hp, _ := troll.Hitpoints(); hp != 10 {
		t.Errorf("attacker hp changed: %d", hp)
	}
	if _, err := hero.Hitpoints(); !errors.Is(err, hoard.ErrDeadActor) {
		t.Errorf("expected ErrDeadActor reading a killed hero; got %v", err)
	}
}

func TestStrikeByKilledAttacker(t *testing.T) {
	e := newEngine(0, Tuning{})
	hero := makeHero(t, "Aragorn", 14, 30)
	orc := makeMonster(t, "Orc", 5, 1, 0)
	kill(t, orc)

	if _, err := e.Strike(orc, hero); !errors.Is(err, hoard.ErrDeadActor) {
		t.Errorf("expected ErrDeadActor; got %v", err)
	}
	if hp, _ := hero.Hitpoints(); hp != 30 {
		t.Errorf("defender hp should be unchanged; got %d", hp)
	}
}

func TestStrikeIllegalTargets(t *testing.T) {
	e := newEngine(0, Tuning{})
	aragorn := makeHero(t, "Aragorn", 14, 30)
	boromir := makeHero(t, "Boromir", 14, 30)
	orc := makeMonster(t, "Orc", 5, 1, 0)
	goblin := makeMonster(t, "Goblin", 5, 1, 0)

	cases := []struct {
		name     string
		atk, def *hoard.Creature
	}{
		{"hero on hero", aragorn, boromir},
		{"monster on monster", orc, goblin},
		{"self", aragorn, aragorn},
		{"nil defender", aragorn, nil},
	}
	for _, tc := range cases {
		if _, err := e.Strike(tc.atk, tc.def); !errors.Is(err, hoard.ErrIllegalTarget) {
			t.Errorf("%s: expected ErrIllegalTarget; got %v", tc.name, err)
		}
	}

	kill(t, goblin)
	if _, err := e.Strike(aragorn, goblin); !errors.Is(err, hoard.ErrIllegalTarget) {
		t.Errorf("striking a corpse: expected ErrIllegalTarget; got %v", err)
	}
}

func TestKillingStrikeLootsLoser(t *testing.T) {
	f := hoard.NewForge(nil, nil)
	e := newEngine(5, Tuning{})
	hero := makeHero(t, "Aragorn", 15, 30)
	orc := makeMonster(t, "Orc", 1, 1, 0)

	axe := makeWeapon(t, f, 40)
	pack := makeBackpack(t, f)
	if err := orc.Anchors().Assign(axe, "claw"); err != nil {
		t.Fatal(err)
	}
	if err := orc.Anchors().Assign(pack, "hide"); err != nil {
		t.Fatal(err)
	}
	if err := pack.AdmitDucats(30); err != nil {
		t.Fatal(err)
	}

	res, err := e.Strike(hero, orc)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Killed || res.Loot == nil {
		t.Fatalf("expected a kill with a loot report; got %+v", res)
	}
	if res.Hitpoints != 0 {
		t.Errorf("expected 0 hp; got %d", res.Hitpoints)
	}

	if !axe.Terminated() {
		if owner, _ := axe.UltimateHolder(); owner != hero {
			t.Errorf("axe must end on the victor or be terminated")
		}
	}
	if got := stackTotal(hero) + stackTotal(orc); got != 30 {
		t.Errorf("ducats not conserved: %v", got)
	}
	if hp, _ := hero.Hitpoints(); hp != 30 {
		t.Errorf("unhurt victor hp changed: %d", hp)
	}
}

func TestNilRandFallsBackToDefaultSeed(t *testing.T) {
	e := New(nil, nil, Tuning{})
	hero := makeHero(t, "Frodo", 10, 30)
	orc := makeMonster(t, "Orc", 30, 2, 0)
	res, err := e.Strike(hero, orc)
	if err != nil {
		t.Fatalf("Strike with nil rng: %v", err)
	}
	want := newEngine(defaultSeed, Tuning{})
	hero2 := makeHero(t, "Frodo", 10, 30)
	orc2 := makeMonster(t, "Orc", 30, 2, 0)
	res2, err := want.Strike(hero2, orc2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Roll != res2.Roll {
		t.Errorf("roll = %d; want %d from the default seed", res.Roll, res2.Roll)
	}
}

func TestTuningDefaults(t *testing.T) {
	got := New(rand.New(rand.NewSource(1)), nil, Tuning{RollMax: 20}).Tuning()
	want := DefaultTuning()
	want.RollMax = 20
	if got != want {
		t.Errorf("tuning = %+v; want %+v", got, want)
	}
}
