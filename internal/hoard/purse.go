package hoard

import (
	"loot-arena/internal/ducat"
)

// Purse is a container for ducats only. Overfilling it past its threshold
// breaks it for good: its coins spill out and it never takes ducats again.
type Purse struct {
	item
	vault
	threshold ducat.Ducat
	broken    bool
}

// Threshold is the most ducats the purse can hold without breaking.
func (p *Purse) Threshold() (ducat.Ducat, error) {
	if err := p.alive(); err != nil {
		return 0, err
	}
	return p.threshold, nil
}

// Broken reports whether the purse has burst.
func (p *Purse) Broken() bool { return p.broken }

// Value is the number of ducats inside.
func (p *Purse) Value() (ducat.Ducat, error) {
	if err := p.alive(); err != nil {
		return 0, err
	}
	return p.coins, nil
}

// CanAdmit is always false: purses hold ducats only.
func (p *Purse) CanAdmit(Possession) bool { return false }

// Admit always fails: purses hold ducats only.
func (p *Purse) Admit(q Possession) error {
	if err := p.alive(); err != nil {
		return err
	}
	kv := []any{"purse", p.id}
	if q != nil {
		kv = append(kv, "id", q.ID())
	}
	return fail(ErrAdmissionDenied, kv, "purse %d holds ducats only", p.id)
}

// CanAdmitDucats reports whether AdmitDucats(d) would be accepted. Going
// over the threshold is accepted; it breaks the purse instead of failing.
func (p *Purse) CanAdmitDucats(d ducat.Ducat) bool {
	if p.terminated || p.broken {
		return false
	}
	if _, err := p.coins.Add(d); err != nil {
		return false
	}
	return fits(p, d.Weight(), true)
}

// AdmitDucats adds d to the purse. When the new total passes the threshold
// the purse breaks and the whole amount is ejected towards its holder.
func (p *Purse) AdmitDucats(d ducat.Ducat) error {
	if err := p.alive(); err != nil {
		return err
	}
	if !p.CanAdmitDucats(d) {
		return fail(ErrAdmissionDenied, []any{"purse", p.id, "ducats", d, "broken", p.broken},
			"purse %d cannot take %v", p.id, d)
	}
	total := p.coins + d
	if total <= p.threshold {
		p.coins = total
		return nil
	}
	p.coins = 0
	p.broken = true
	lost := p.eject(total)
	if p.forge != nil {
		p.forge.logger.Info("purse broke", "purse", p.id, "threshold", p.threshold,
			"ejected", total, "lost", lost)
	}
	return nil
}

// eject hands amount to the purse's holder and returns whatever found no home.
// A containing container takes it on its direct stack; the room was already
// accounted for while the coins sat in the purse. On an anchor the coins go
// to the first backpack on that creature that can take them.
func (p *Purse) eject(amount ducat.Ducat) ducat.Ducat {
	switch h := p.holder.(type) {
	case Container:
		h.contents().coins += amount
		return 0
	case *Anchor:
		for _, c := range h.owner.containers() {
			if _, ok := c.(*Backpack); ok && c.CanAdmitDucats(amount) {
				c.contents().coins += amount
				return 0
			}
		}
	}
	return amount
}

// Terminate destroys the purse; any ducats inside are lost.
func (p *Purse) Terminate() error {
	if err := p.alive(); err != nil {
		return err
	}
	p.coins = 0
	p.terminate()
	return nil
}
