package factory

import (
	"errors"
	"testing"

	"loot-arena/internal/config"
	"loot-arena/internal/ducat"
	"loot-arena/internal/hoard"
	"loot-arena/internal/measure"
)

// testMonster is a minimal monster preset used across factory tests.
var testMonster = config.Creature{
	Name:      "Cave Troll",
	Species:   config.SpeciesMonster,
	Strength:  25,
	Hitpoints: 35,
	Damage:    6,
	Skin:      20,
	Anchors:   []string{"club hand", "sack"},
}

func TestPopulateDefaultArena(t *testing.T) {
	a, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	r, err := Populate(hoard.NewForge(nil, nil), a)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if len(r.Creatures) != len(a.Creatures) {
		t.Fatalf("built %d creatures; want %d", len(r.Creatures), len(a.Creatures))
	}
	for _, spec := range a.Creatures {
		c, ok := r.Get(spec.Name)
		if !ok {
			t.Fatalf("missing %s", spec.Name)
		}
		if r.Name(c) != spec.Name {
			t.Errorf("Name(%s) = %q", spec.Name, r.Name(c))
		}
		if hp, _ := c.Hitpoints(); hp != spec.Hitpoints {
			t.Errorf("%s hp = %d; want %d", spec.Name, hp, spec.Hitpoints)
		}
		if free := len(c.Anchors().Free()); free != len(c.Anchors().Names())-len(spec.Gear) {
			t.Errorf("%s: %d free anchors after %d gear entries", spec.Name, free, len(spec.Gear))
		}
	}
}

func TestNewCreatureSpecies(t *testing.T) {
	f := hoard.NewForge(nil, nil)
	troll, err := NewCreature(f, testMonster)
	if err != nil {
		t.Fatal(err)
	}
	if troll.Species() != hoard.SpeciesMonster {
		t.Errorf("species = %v; want monster", troll.Species())
	}
	if dmg, _ := troll.Damage(); dmg != 6 {
		t.Errorf("damage = %d; want 6", dmg)
	}

	hero := config.Creature{Name: "Eowyn", Species: config.SpeciesHero, Strength: 12, Hitpoints: 20}
	c, err := NewCreature(f, hero)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Anchors().Names(); len(got) != len(hoard.HeroAnchors) {
		t.Errorf("hero anchors = %v", got)
	}

	if _, err := NewCreature(f, config.Creature{Name: "X", Species: "elf", Strength: 1, Hitpoints: 1}); err == nil {
		t.Error("expected an error for an unknown species")
	}
	bad := hero
	bad.Name = "eowyn"
	if _, err := NewCreature(f, bad); !errors.Is(err, hoard.ErrInvalidConstruction) {
		t.Errorf("expected ErrInvalidConstruction; got %v", err)
	}
}

func TestNewCreatureGear(t *testing.T) {
	f := hoard.NewForge(nil, nil)
	spec := testMonster
	spec.Gear = []config.Gear{
		{Anchor: "club hand", Item: &config.Item{Kind: config.KindWeapon, Weight: 12, Damage: 9, Value: 40}},
		{Anchor: "sack", Ducat: true},
	}
	troll, err := NewCreature(f, spec)
	if err != nil {
		t.Fatal(err)
	}
	if dmg, _ := troll.Damage(); dmg != 15 {
		t.Errorf("damage with club = %d; want 15", dmg)
	}
	sack, _ := troll.Anchors().At("sack")
	if !sack.HoldsDucat() {
		t.Error("sack should hold a ducat")
	}

	spec.Gear = []config.Gear{{Anchor: "tail", Ducat: true}}
	if _, err := NewCreature(f, spec); !errors.Is(err, hoard.ErrInvalidAnchor) {
		t.Errorf("expected ErrInvalidAnchor for an unknown slot; got %v", err)
	}
}

func TestNewPossessionBackpack(t *testing.T) {
	f := hoard.NewForge(nil, nil)
	p, err := NewPossession(f, config.Item{
		Kind:     config.KindBackpack,
		Weight:   1,
		Capacity: 20,
		Value:    5,
		Ducats:   10,
		Contents: []config.Item{
			{Kind: config.KindWeapon, Weight: 2000, Unit: "g", Damage: 3, Value: 7},
			{Kind: config.KindPurse, Weight: 0.1, Threshold: 20, Ducats: 8},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, ok := p.(*hoard.Backpack)
	if !ok {
		t.Fatalf("got %T; want *hoard.Backpack", p)
	}
	if total, _ := b.Ducats(); total != 18 {
		t.Errorf("transitive ducats = %v; want 18", total)
	}
	if v, _ := b.Value(); v != ducat.Ducat(5+10+7+8) {
		t.Errorf("value = %v; want 30", v)
	}
	used, _ := b.UsedCapacity(measure.Kilogram)
	want := 1 + 2 + 0.1 + 18*ducat.UnitWeight.In(measure.Kilogram)
	if used < want-1e-9 || used > want+1e-9 {
		t.Errorf("used = %v; want %v", used, want)
	}
}

func TestNewPossessionRejects(t *testing.T) {
	f := hoard.NewForge(nil, nil)
	cases := map[string]config.Item{
		"overfull purse": {Kind: config.KindPurse, Weight: 0.1, Threshold: 5, Ducats: 6},
		"tiny backpack": {Kind: config.KindBackpack, Weight: 1, Capacity: 2, Contents: []config.Item{
			{Kind: config.KindArmor, Weight: 5, Protection: 1},
		}},
		"bad unit":      {Kind: config.KindArmor, Weight: 1, Unit: "stone", Protection: 1},
		"unknown kind":  {Kind: "shield", Weight: 1},
		"odd weapon id": {Kind: config.KindWeapon, ID: 7, Weight: 1, Damage: 1, Value: 1},
	}
	for name, item := range cases {
		if p, err := NewPossession(f, item); err == nil || p != nil {
			t.Errorf("%s: expected an error; got %v, %v", name, p, err)
		}
	}
}
