package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

var (
	styleEmpty   = tcell.StyleDefault
	styleTree    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFire    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleAsh     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault
	styleClosing = tcell.StyleDefault.Bold(true)
)

const pollInterval = 5 * time.Millisecond

// Terminal redraws each cycle in place on a tcell screen.
type Terminal struct {
	screen    tcell.Screen
	step      *core.FixedStep
	statusRow int
}

// NewTerminal draws on an initialized screen and paces cycles at tps.
func NewTerminal(screen tcell.Screen, tps int) *Terminal {
	t := &Terminal{screen: screen, step: core.NewFixedStep(tps)}
	// Consume the immediate first tick so cycle 0 stays up for a full interval.
	t.step.ShouldStep()
	return t
}

// Report draws the grid and the status line.
func (t *Terminal) Report(f wildfire.Frame) error {
	t.screen.Clear()
	for r := 0; r < f.Grid.N; r++ {
		for c := 0; c < f.Grid.N; c++ {
			cell := f.Grid.At(r, c)
			t.screen.SetContent(c, r, rune(cell.Symbol()), nil, cellStyle(cell))
		}
	}
	t.statusRow = f.Grid.N
	t.drawLine(t.statusRow, wildfire.FormatStatus(f.Config, f.Counters), styleStatus)
	t.screen.Show()
	return nil
}

// Finish appends the closing line below the status line.
func (t *Terminal) Finish(o wildfire.Outcome) error {
	msg := "press q to quit"
	if o.FiresOut() {
		msg = wildfire.FormatFiresOut(o.Counters) + " " + msg
	}
	t.drawLine(t.statusRow+1, msg, styleClosing)
	t.screen.Show()
	return nil
}

// Wait blocks until the next cycle is due or ctx is done.
func (t *Terminal) Wait(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for !t.step.ShouldStep() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// WatchKeys calls cancel when q, Esc or Ctrl-C is pressed. It returns after
// cancelling or once the screen is finalized.
func (t *Terminal) WatchKeys(cancel context.CancelFunc) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		}
	}
}

func (t *Terminal) drawLine(row int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(i, row, r, nil, style)
	}
}

func cellStyle(c wildfire.Cell) tcell.Style {
	switch {
	case c == wildfire.Tree:
		return styleTree
	case c.OnFire():
		return styleFire
	case c == wildfire.Ash:
		return styleAsh
	default:
		return styleEmpty
	}
}
