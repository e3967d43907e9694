package combat

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"loot-arena/internal/hoard"
)

// Bout is a one-on-one fight: the two creatures strike in turn until one
// of them is killed.
type Bout struct {
	ID       ulid.ULID
	engine   *Engine
	logger   *slog.Logger
	fighters [2]*hoard.Creature
	turn     int
	last     StrikeResult
}

// Outcome summarises a finished bout.
type Outcome struct {
	ID     ulid.ULID
	Winner *hoard.Creature
	Loser  *hoard.Creature
	Turns  int
	Loot   *LootReport
}

// NewBout pairs first and second, who strikes first. Each must be able
// to target the other.
func (e *Engine) NewBout(first, second *hoard.Creature) (*Bout, error) {
	if first == nil || second == nil || first.Killed() || second.Killed() {
		return nil, fail(hoard.ErrDeadActor, nil, "both fighters must be alive")
	}
	if !first.CanTarget(second) || !second.CanTarget(first) {
		return nil, fail(hoard.ErrIllegalTarget, nil, "fighters cannot target each other")
	}
	id := ulid.Make()
	b := &Bout{
		ID:       id,
		engine:   e,
		logger:   e.logger.With("bout", id.String()),
		fighters: [2]*hoard.Creature{first, second},
	}
	a, _ := first.Name()
	d, _ := second.Name()
	b.logger.Info("bout started", "first", a, "second", d)
	return b, nil
}

// Fighters returns the two creatures in striking order.
func (b *Bout) Fighters() (first, second *hoard.Creature) {
	return b.fighters[0], b.fighters[1]
}

// Turn returns the number of strikes made so far.
func (b *Bout) Turn() int { return b.turn }

// Last returns the most recent strike.
func (b *Bout) Last() StrikeResult { return b.last }

// Over reports whether one fighter is dead.
func (b *Bout) Over() bool {
	return b.fighters[0].Killed() || b.fighters[1].Killed()
}

// Winner returns the surviving fighter once the bout is over.
func (b *Bout) Winner() *hoard.Creature {
	switch {
	case b.fighters[1].Killed():
		return b.fighters[0]
	case b.fighters[0].Killed():
		return b.fighters[1]
	}
	return nil
}

// Step makes the next strike.
func (b *Bout) Step() (StrikeResult, error) {
	if b.Over() {
		return StrikeResult{}, fail(hoard.ErrDeadActor, []any{"bout", b.ID.String()}, "bout is over")
	}
	attacker, defender := b.fighters[b.turn%2], b.fighters[(b.turn+1)%2]
	res, err := b.engine.strike(b.logger, attacker, defender)
	if err != nil {
		return res, err
	}
	b.turn++
	b.last = res
	return res, nil
}

// Run strikes until one fighter dies, or fails with ErrStalemate after
// the engine's turn limit.
func (b *Bout) Run() (Outcome, error) {
	var loot *LootReport
	for !b.Over() {
		if b.turn >= b.engine.tuning.MaxTurns {
			b.logger.Warn("bout stalemate", "turns", b.turn)
			return Outcome{ID: b.ID, Turns: b.turn}, ErrStalemate
		}
		res, err := b.Step()
		if err != nil {
			return Outcome{ID: b.ID, Turns: b.turn}, err
		}
		if res.Killed {
			loot = res.Loot
		}
	}
	out := Outcome{ID: b.ID, Winner: b.Winner(), Turns: b.turn, Loot: loot}
	if out.Winner == b.fighters[0] {
		out.Loser = b.fighters[1]
	} else {
		out.Loser = b.fighters[0]
	}
	name, _ := out.Winner.Name()
	b.logger.Info("bout finished", "winner", name, "turns", b.turn)
	return out, nil
}

// Duel runs a whole bout between first and second.
func (e *Engine) Duel(first, second *hoard.Creature) (Outcome, error) {
	b, err := e.NewBout(first, second)
	if err != nil {
		return Outcome{}, err
	}
	return b.Run()
}
