// Package game runs the arena demo: it builds the creatures of a preset,
// fights its bouts one strike at a time and shows the result.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"

	"loot-arena/assets"
	"loot-arena/internal/combat"
	"loot-arena/internal/config"
	"loot-arena/internal/factory"
	"loot-arena/internal/hoard"
	"loot-arena/internal/registry"
	"loot-arena/internal/render"
)

// maxMessages bounds the message log.
const maxMessages = 50

// Options configures a Game.
type Options struct {
	Arena  config.Arena
	Seed   int64
	Logger *slog.Logger
	// Records, when set, receives one JSON line per finished bout.
	Records io.Writer
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *combat.Engine
	logger   *slog.Logger
	arena    config.Arena
	seed     int64
	roster   *factory.Roster
	next     int // index of the next bout to start
	bout     *combat.Bout
	shown    [2]*hoard.Creature
	messages []string
	records  io.Writer
	done     bool
}

// New builds the arena's creatures and an engine seeded with opts.Seed.
// screen may be nil when the game is only played headless through Play.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	forge := hoard.NewForge(registry.New(), logger)
	roster, err := factory.Populate(forge, opts.Arena)
	if err != nil {
		return nil, fmt.Errorf("populate arena: %w", err)
	}
	g := &Game{
		screen:  screen,
		engine:  combat.New(rng, logger, opts.Arena.Tuning.Combat()),
		logger:  logger,
		arena:   opts.Arena,
		seed:    opts.Seed,
		roster:  roster,
		records: opts.Records,
	}
	if screen != nil {
		g.renderer = render.NewRenderer(screen)
	}
	if len(opts.Arena.Bouts) > 0 {
		b := opts.Arena.Bouts[0]
		g.shown[0], _ = roster.Get(b.First)
		g.shown[1], _ = roster.Get(b.Second)
	}
	logger.Info("arena ready", "arena", opts.Arena.Name, "creatures", len(roster.Creatures),
		"bouts", len(opts.Arena.Bouts), "seed", opts.Seed)
	return g, nil
}

// Done reports whether every bout has been fought.
func (g *Game) Done() bool { return g.done }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the interactive loop: space strikes, a finishes the bout, q quits.
func (g *Game) Run() {
	defer g.screen.Fini()

	for _, line := range strings.Split(assets.ArenaOpening, "\n") {
		g.addMessage(line)
	}
	for {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			g.processAction(action)
		}
	}
}

// Play fights every bout to the end without a screen and writes the message
// log followed by a report of all creatures to w.
func (g *Game) Play(w io.Writer) error {
	for !g.done {
		g.processAction(ActionFinishBout)
	}
	for _, msg := range g.messages {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return render.WriteReport(w, g.panels(g.roster.Creatures))
}

// processAction handles one player action.
func (g *Game) processAction(action Action) {
	switch action {
	case ActionStrike:
		g.step()
	case ActionFinishBout:
		g.step()
		for g.bout != nil {
			g.step()
		}
	}
}

// step makes the next strike, starting the next bout first if needed.
func (g *Game) step() {
	if g.done {
		return
	}
	if g.bout == nil {
		g.startNextBout()
		return
	}
	res, err := g.bout.Step()
	if err != nil {
		g.addMessage(fmt.Sprintf("The bout cannot go on: %v", err))
		g.finishBout(combat.Outcome{ID: g.bout.ID, Turns: g.bout.Turn()}, err)
		return
	}
	g.reportStrike(res)
	switch {
	case g.bout.Over():
		g.finishBout(g.outcome(res), nil)
	case g.bout.Turn() >= g.engine.Tuning().MaxTurns:
		g.addMessage("Neither fighter gives way. The bout is called off.")
		g.finishBout(combat.Outcome{ID: g.bout.ID, Turns: g.bout.Turn()}, combat.ErrStalemate)
	}
}

func (g *Game) outcome(last combat.StrikeResult) combat.Outcome {
	first, second := g.bout.Fighters()
	out := combat.Outcome{ID: g.bout.ID, Winner: g.bout.Winner(), Turns: g.bout.Turn(), Loot: last.Loot}
	if out.Winner == first {
		out.Loser = second
	} else {
		out.Loser = first
	}
	return out
}

// startNextBout pairs the next two fighters, skipping bouts that can no
// longer happen.
func (g *Game) startNextBout() {
	for g.next < len(g.arena.Bouts) {
		spec := g.arena.Bouts[g.next]
		g.next++
		first, _ := g.roster.Get(spec.First)
		second, _ := g.roster.Get(spec.Second)
		b, err := g.engine.NewBout(first, second)
		if err != nil {
			g.addMessage(fmt.Sprintf("%s vs %s is off: %v", spec.First, spec.Second, err))
			continue
		}
		g.bout = b
		g.shown = [2]*hoard.Creature{first, second}
		g.addMessage(fmt.Sprintf("Bout %d: %s vs %s.", g.next, spec.First, spec.Second))
		return
	}
	g.done = true
	g.addMessage("All bouts fought.")
}

func (g *Game) reportStrike(res combat.StrikeResult) {
	if !res.Hit {
		line := assets.MissLines[res.Roll%len(assets.MissLines)]
		g.addMessage(fmt.Sprintf(line, res.Attacker, res.Defender) + fmt.Sprintf(" (roll %d < %d)", res.Roll, res.Protection))
		return
	}
	g.addMessage(fmt.Sprintf("%s hits %s for %d. (roll %d, %d hp left)", res.Attacker, res.Defender, res.Damage, res.Roll, res.Hitpoints))
	if !res.Killed {
		return
	}
	g.addMessage(fmt.Sprintf(assets.KillLines[res.Roll%len(assets.KillLines)], res.Attacker, res.Defender))
	if l := res.Loot; l != nil {
		g.addMessage(fmt.Sprintf("%s loots %d possessions and %d ducats. %d left behind are destroyed.",
			res.Attacker, len(l.Taken), l.Ducats, len(l.Terminated)))
		for _, p := range l.Dropped {
			g.addMessage(fmt.Sprintf("%s drops %s to make room.", res.Attacker, render.Describe(p)))
		}
	}
	if res.Recovered > 0 {
		g.addMessage(fmt.Sprintf("%s recovers %d hp.", res.Attacker, res.Recovered))
	}
}

func (g *Game) finishBout(out combat.Outcome, err error) {
	first, second := g.bout.Fighters()
	rec := BoutRecord{
		ID:        out.ID.String(),
		Arena:     g.arena.Name,
		Seed:      g.seed,
		First:     g.roster.Name(first),
		Second:    g.roster.Name(second),
		Turns:     out.Turns,
		Stalemate: err != nil,
	}
	if out.Winner != nil {
		rec.Winner = g.roster.Name(out.Winner)
	}
	if out.Loot != nil {
		rec.Looted = len(out.Loot.Taken)
		rec.Ducats = uint64(out.Loot.Ducats)
		rec.Dropped = len(out.Loot.Dropped)
		rec.Destroyed = len(out.Loot.Terminated)
	}
	g.bout = nil
	if g.records != nil {
		if err := writeRecord(g.records, rec); err != nil {
			g.logger.Warn("bout record not written", "bout", rec.ID, "err", err)
		}
	}
}

func (g *Game) panels(cs []*hoard.Creature) []render.Panel {
	out := make([]render.Panel, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, render.Snapshot(c, g.roster.Name(c)))
		}
	}
	return out
}

func (g *Game) draw() {
	cs := g.shown[:]
	if g.shown[0] == nil {
		cs = g.roster.Creatures
	}
	turn := 0
	if g.bout != nil {
		turn = g.bout.Turn()
	}
	hint := "[space] strike  [a] finish bout  [q] quit"
	if g.done {
		hint = "[q] quit"
	}
	g.renderer.DrawFrame(g.panels(cs), render.HUD{
		Title:    g.arena.Name,
		Turn:     turn,
		Hint:     hint,
		Messages: g.messages,
	})
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
