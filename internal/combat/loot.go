package combat

import (
	"log/slog"
	"slices"

	"loot-arena/internal/ducat"
	"loot-arena/internal/hoard"
)

// LootReport records what changed hands after a kill.
type LootReport struct {
	// Taken lists the possessions moved from the loser to the victor.
	Taken []hoard.Possession
	// Ducats is the loose currency moved to the victor.
	Ducats ducat.Ducat
	// Dropped lists victor possessions evicted with nowhere to go.
	Dropped []hoard.Possession
	// Terminated lists what cleanup destroyed on the loser.
	Terminated []hoard.Possession
}

// candidate is one lootable thing: a possession, or a pile of ducats when
// item is nil.
type candidate struct {
	item  hoard.Possession
	stack hoard.Stack
}

type pool [numCategories][]candidate

// classify sorts everything still on the loser into loot categories.
func classify(loser *hoard.Creature) pool {
	var out pool
	for _, s := range loser.Stacks() {
		out[CategoryCurrency] = append(out[CategoryCurrency], candidate{stack: s})
	}
	for _, p := range loser.Carried() {
		var cat Category
		switch p.(type) {
		case *hoard.Purse:
			cat = CategoryCurrency
		case *hoard.Weapon:
			cat = CategoryWeapon
		case *hoard.Armor:
			cat = CategoryArmor
		case *hoard.Backpack:
			cat = CategoryContainer
		default:
			continue
		}
		out[cat] = append(out[cat], candidate{item: p})
	}
	return out
}

// pick draws a non-empty category by weight.
func (e *Engine) pick(p pool) (Category, bool) {
	total := 0
	for c, list := range p {
		if len(list) > 0 {
			total += e.tuning.Weights[c]
		}
	}
	if total == 0 {
		return 0, false
	}
	n := e.rng.Intn(total)
	for c, list := range p {
		if len(list) == 0 {
			continue
		}
		if n < e.tuning.Weights[c] {
			return Category(c), true
		}
		n -= e.tuning.Weights[c]
	}
	return 0, false
}

// Loot redistributes a killed loser's possessions to victor. Strike calls
// it once per kill; it is exported for scripted scenarios.
func (e *Engine) Loot(victor, loser *hoard.Creature) (LootReport, error) {
	if victor == nil || victor.Killed() {
		return LootReport{}, fail(hoard.ErrDeadActor, nil, "a killed creature cannot loot")
	}
	if loser == nil || !loser.Killed() {
		return LootReport{}, fail(hoard.ErrIllegalTarget, nil, "only a killed creature can be looted")
	}
	return e.loot(e.logger, victor, loser), nil
}

func (e *Engine) loot(logger *slog.Logger, victor, loser *hoard.Creature) LootReport {
	var r LootReport
	name, _ := victor.Name()
	logger = logger.With("victor", name)

	for range e.tuning.LootDraws {
		p := classify(loser)
		cat, ok := e.pick(p)
		if !ok {
			break
		}
		c := p[cat][e.rng.Intn(len(p[cat]))]
		if c.item == nil {
			e.takeDucats(logger, victor, loser, c.stack, &r)
		} else {
			e.takeItem(logger, victor, loser, c.item, &r)
		}
	}

	r.Terminated = cleanup(loser)
	if len(r.Terminated) > 0 {
		logger.Debug("loot cleanup", "terminated", len(r.Terminated))
	}
	return r
}

func (e *Engine) takeItem(logger *slog.Logger, victor, loser *hoard.Creature, p hoard.Possession, r *LootReport) {
	kv := []any{"kind", hoard.KindName(p.Kind()), "id", p.ID()}
	restore, err := loser.Surrender(p)
	if err != nil {
		logger.Warn("loot surrender failed", append(kv, "err", err)...)
		return
	}
	if !place(victor, p) && !evictFor(logger, victor, p, r) {
		restore()
		logger.Debug("loot left behind", kv...)
		return
	}
	r.Taken = append(r.Taken, p)
	logger.Info("looted", kv...)
}

func (e *Engine) takeDucats(logger *slog.Logger, victor, loser *hoard.Creature, s hoard.Stack, r *LootReport) {
	restore, err := loser.SurrenderDucats(s.Holder, s.Amount)
	if err != nil {
		logger.Warn("loot surrender failed", "ducats", s.Amount, "err", err)
		return
	}
	if !placeDucats(victor, s.Amount) {
		restore()
		logger.Debug("ducats left behind", "ducats", s.Amount)
		return
	}
	if sum, err := r.Ducats.Add(s.Amount); err == nil {
		r.Ducats = sum
	}
	logger.Info("looted", "ducats", s.Amount)
}

// place puts the unheld p on a free anchor of victor, else into the first
// of victor's containers that admits it.
func place(victor *hoard.Creature, p hoard.Possession) bool {
	anchors := victor.Anchors()
	for _, name := range anchors.Free() {
		if anchors.Assign(p, name) == nil {
			return true
		}
	}
	for _, c := range victor.Containers() {
		if c.Admit(p) == nil {
			return true
		}
	}
	return false
}

// evictFor clears the anchor holding victor's cheapest possession worth
// less than p and retries placing p once. On success the evicted
// possession is placed again or dropped; on failure it goes back.
func evictFor(logger *slog.Logger, victor *hoard.Creature, p hoard.Possession, r *LootReport) bool {
	worth, err := p.Value()
	if err != nil {
		return false
	}
	var slot *hoard.Anchor
	var low ducat.Ducat
	for _, a := range victor.Anchors().All() {
		q := a.Item()
		if q == nil {
			continue
		}
		v, err := q.Value()
		if err != nil || v >= worth {
			continue
		}
		if slot == nil || v < low {
			slot, low = a, v
		}
	}
	if slot == nil {
		return false
	}

	evicted, _, err := victor.Anchors().Clear(slot.Name())
	if err != nil || evicted == nil {
		return false
	}
	if !place(victor, p) {
		if err := victor.Anchors().Assign(evicted, slot.Name()); err != nil {
			logger.Warn("evicted possession could not return", "id", evicted.ID(), "err", err)
			r.Dropped = append(r.Dropped, evicted)
		}
		return false
	}
	if !place(victor, evicted) {
		r.Dropped = append(r.Dropped, evicted)
		logger.Info("possession dropped", "kind", hoard.KindName(evicted.Kind()), "id", evicted.ID())
	}
	return true
}

// placeDucats merges d into the first of victor's containers that takes it
// without breaking a purse. A single ducat may go on a free anchor.
func placeDucats(victor *hoard.Creature, d ducat.Ducat) bool {
	for _, c := range victor.Containers() {
		if pu, ok := c.(*hoard.Purse); ok && !roomInPurse(pu, d) {
			continue
		}
		if c.AdmitDucats(d) == nil {
			return true
		}
	}
	if d != 1 {
		return false
	}
	anchors := victor.Anchors()
	for _, name := range anchors.Free() {
		if anchors.AssignDucat(name) == nil {
			return true
		}
	}
	return false
}

func roomInPurse(p *hoard.Purse, d ducat.Ducat) bool {
	held, err := p.Ducats()
	if err != nil {
		return false
	}
	limit, err := p.Threshold()
	if err != nil {
		return false
	}
	sum, err := held.Add(d)
	return err == nil && sum <= limit
}

// cleanup terminates the weapons and armor left on loser, then every
// backpack that ended up empty, innermost first. Purses and ducats stay.
func cleanup(loser *hoard.Creature) []hoard.Possession {
	var gone []hoard.Possession
	carried := loser.Carried()
	for _, p := range carried {
		switch p.(type) {
		case *hoard.Weapon, *hoard.Armor:
			if p.Terminate() == nil {
				gone = append(gone, p)
			}
		}
	}
	for _, p := range slices.Backward(carried) {
		b, ok := p.(*hoard.Backpack)
		if !ok || b.Terminated() {
			continue
		}
		entries, err := b.Entries()
		if err != nil || len(entries) > 0 {
			continue
		}
		if coins, err := b.Ducats(); err != nil || coins > 0 {
			continue
		}
		if b.Terminate() == nil {
			gone = append(gone, b)
		}
	}
	return gone
}
