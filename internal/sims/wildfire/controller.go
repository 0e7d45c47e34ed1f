package wildfire

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Status is the state of the cycle loop.
type Status int

const (
	// Running means another cycle will be computed.
	Running Status = iota
	// BurnedOut means no tree is on fire.
	BurnedOut
	// BudgetExhausted means the configured number of cycles has been run.
	BudgetExhausted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case BurnedOut:
		return "burned out"
	case BudgetExhausted:
		return "budget exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Unbounded is the cycle budget of a run that stops only when the fires do.
const Unbounded = -1

// IsTerminal evaluates the loop state. Burn-out takes precedence over an
// exhausted budget, and a grid that never held fire counts as burned out.
func IsTerminal(c Counters, cyclesRemaining int) Status {
	if c.FireTrees == 0 {
		return BurnedOut
	}
	if cyclesRemaining == 0 {
		return BudgetExhausted
	}
	return Running
}

// Frame is what a reporter receives once per cycle. Grid is only valid until
// the next cycle is computed.
type Frame struct {
	Config   Config
	Grid     *Grid
	Counters Counters
}

// Outcome describes how a run ended.
type Outcome struct {
	Status   Status
	Counters Counters
}

// FiresOut reports whether the run ended because every fire went out.
func (o Outcome) FiresOut() bool { return o.Status == BurnedOut }

// Reporter consumes the frames of a run.
type Reporter interface {
	Report(f Frame) error
	Finish(o Outcome) error
}

// Controller drives a world cycle by cycle until it reaches a terminal state.
type Controller struct {
	world     *World
	remaining int
	reporter  Reporter
	status    Status
	started   bool
	finished  bool
}

// NewController prepares a run over w. budget is the number of cycles to
// compute after cycle 0, or Unbounded.
func NewController(w *World, budget int, r Reporter) *Controller {
	if budget < 0 {
		budget = Unbounded
	}
	return &Controller{world: w, remaining: budget, reporter: r}
}

// Status returns the current loop state.
func (c *Controller) Status() Status { return c.status }

// Remaining returns the cycles left in the budget, or Unbounded.
func (c *Controller) Remaining() int { return c.remaining }

// World returns the world being driven.
func (c *Controller) World() *World { return c.world }

// Begin reports cycle 0 and evaluates the loop state. It is a no-op after the
// first call.
func (c *Controller) Begin() error {
	if c.started {
		return nil
	}
	c.started = true
	if err := c.report(); err != nil {
		return err
	}
	return c.evaluate()
}

// Tick computes and reports one cycle. It does nothing once the run is
// terminal.
func (c *Controller) Tick() error {
	if !c.started {
		return c.Begin()
	}
	if c.status != Running {
		return nil
	}
	c.world.Step()
	counters := c.world.Counters()
	logrus.Debugf("cycle %d: changes=%d cumulative=%d living=%d burning=%d ash=%d",
		counters.Cycle, counters.Changes, counters.CumulativeChanges,
		counters.LivingTrees, counters.FireTrees, counters.AshTrees)
	if err := c.report(); err != nil {
		return err
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.evaluate()
}

// Run loops until the world burns out or the budget is spent. Cancellation is
// observed between cycles only.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	if err := c.Begin(); err != nil {
		return c.outcome(), err
	}
	for c.status == Running {
		if err := ctx.Err(); err != nil {
			return c.outcome(), err
		}
		if err := c.Tick(); err != nil {
			return c.outcome(), err
		}
	}
	return c.outcome(), nil
}

func (c *Controller) report() error {
	counters := c.world.Counters()
	if c.reporter == nil {
		return nil
	}
	f := Frame{Config: c.world.Config(), Grid: c.world.Grid(), Counters: counters}
	if err := c.reporter.Report(f); err != nil {
		return fmt.Errorf("report cycle %d: %w", counters.Cycle, err)
	}
	return nil
}

func (c *Controller) evaluate() error {
	c.status = IsTerminal(c.world.Counters(), c.remaining)
	if c.status == Running || c.finished {
		return nil
	}
	c.finished = true
	o := c.outcome()
	logrus.Infof("simulation %s after %d cycles (%d cumulative changes)",
		o.Status, o.Counters.Cycle, o.Counters.CumulativeChanges)
	if c.reporter == nil {
		return nil
	}
	if err := c.reporter.Finish(o); err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	return nil
}

func (c *Controller) outcome() Outcome {
	return Outcome{Status: c.status, Counters: c.world.Counters()}
}
