// Package config loads arena presets: the creatures, their starting gear,
// the bouts to fight and the combat tuning.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"loot-arena/assets"
	"loot-arena/internal/combat"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid arena")

// Species names accepted in presets.
const (
	SpeciesHero    = "hero"
	SpeciesMonster = "monster"
)

// Possession kinds accepted in presets.
const (
	KindWeapon   = "weapon"
	KindArmor    = "armor"
	KindBackpack = "backpack"
	KindPurse    = "purse"
)

type Arena struct {
	Name      string     `yaml:"name"`
	Seed      int64      `yaml:"seed"`
	Tuning    Tuning     `yaml:"tuning"`
	Creatures []Creature `yaml:"creatures"`
	Bouts     []Bout     `yaml:"bouts"`
}

type Tuning struct {
	RollMax     int         `yaml:"roll_max"`
	LootDraws   int         `yaml:"loot_draws"`
	MaxTurns    int         `yaml:"max_turns"`
	LootWeights LootWeights `yaml:"loot_weights"`
}

type LootWeights struct {
	Currency  int `yaml:"currency"`
	Weapon    int `yaml:"weapon"`
	Armor     int `yaml:"armor"`
	Container int `yaml:"container"`
}

type Creature struct {
	Name      string   `yaml:"name"`
	Species   string   `yaml:"species"`
	Strength  float64  `yaml:"strength"`
	Hitpoints int      `yaml:"hitpoints"`
	Damage    int      `yaml:"damage"`
	Skin      int      `yaml:"skin"`
	Anchors   []string `yaml:"anchors"`
	Gear      []Gear   `yaml:"gear"`
}

// Gear places either an item or a single ducat on an anchor.
type Gear struct {
	Anchor string `yaml:"anchor"`
	Ducat  bool   `yaml:"ducat"`
	Item   *Item  `yaml:"item"`
}

type Item struct {
	Kind       string  `yaml:"kind"`
	ID         uint64  `yaml:"id"`
	Weight     float64 `yaml:"weight"`
	Unit       string  `yaml:"unit"`
	Damage     int     `yaml:"damage"`
	Protection int     `yaml:"protection"`
	Value      uint64  `yaml:"value"`
	Capacity   float64 `yaml:"capacity"`
	Threshold  uint64  `yaml:"threshold"`
	Ducats     uint64  `yaml:"ducats"`
	Contents   []Item  `yaml:"contents"`
}

type Bout struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Combat converts the preset tuning. Missing knobs fall back to the
// engine defaults.
func (t Tuning) Combat() combat.Tuning {
	out := combat.Tuning{
		RollMax:   t.RollMax,
		LootDraws: t.LootDraws,
		MaxTurns:  t.MaxTurns,
	}
	out.Weights[combat.CategoryCurrency] = t.LootWeights.Currency
	out.Weights[combat.CategoryWeapon] = t.LootWeights.Weapon
	out.Weights[combat.CategoryArmor] = t.LootWeights.Armor
	out.Weights[combat.CategoryContainer] = t.LootWeights.Container
	return out
}

var arenaSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("arena.schema.json", assets.ArenaSchema)
})

// Load reads the preset at path. An empty path yields the built-in preset.
func Load(path string) (Arena, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Arena{}, err
	}
	a, err := Parse(raw)
	if err != nil {
		return Arena{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Default returns the built-in preset.
func Default() (Arena, error) {
	a, err := Parse(assets.DefaultArena)
	if err != nil {
		return Arena{}, fmt.Errorf("default arena: %w", err)
	}
	return a, nil
}

// Parse decodes a YAML preset, checks it against the arena schema and then
// against the rules a schema cannot express.
func Parse(raw []byte) (Arena, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Arena{}, fmt.Errorf("arena yaml: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return Arena{}, err
	}
	var a Arena
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return Arena{}, fmt.Errorf("arena yaml: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Arena{}, err
	}
	return a, nil
}

// validateSchema round-trips doc through JSON so the validator sees the
// same number types it would for a JSON document.
func validateSchema(doc any) error {
	s, err := arenaSchema()
	if err != nil {
		return fmt.Errorf("arena schema: %w", err)
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Validate checks cross-references: creature names are unique and every
// bout pairs a hero with a monster, each fighting at most once at a time.
func (a Arena) Validate() error {
	species := make(map[string]string, len(a.Creatures))
	for _, c := range a.Creatures {
		if _, dup := species[c.Name]; dup {
			return fmt.Errorf("%w: duplicate creature %q", ErrInvalid, c.Name)
		}
		species[c.Name] = c.Species
	}
	for i, b := range a.Bouts {
		s1, ok1 := species[b.First]
		s2, ok2 := species[b.Second]
		switch {
		case !ok1:
			return fmt.Errorf("%w: bout %d: unknown creature %q", ErrInvalid, i, b.First)
		case !ok2:
			return fmt.Errorf("%w: bout %d: unknown creature %q", ErrInvalid, i, b.Second)
		case s1 == s2:
			return fmt.Errorf("%w: bout %d: %s and %s are both %ss", ErrInvalid, i, b.First, b.Second, s1)
		}
	}
	return nil
}

// Creature returns the creature called name.
func (a Arena) Creature(name string) (Creature, bool) {
	for _, c := range a.Creatures {
		if c.Name == name {
			return c, true
		}
	}
	return Creature{}, false
}
