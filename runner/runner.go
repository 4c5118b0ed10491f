// Package runner executes registry cases through an emulator and judges their output.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/notargets/emucheck/emulator"
	"github.com/notargets/emucheck/metrics"
	"github.com/notargets/emucheck/registry"
	"github.com/notargets/emucheck/verify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner drives cases through an emulator
type Runner struct {
	emu     emulator.Emulator
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates a Runner for emu
func New(emu emulator.Emulator, opts ...Option) (*Runner, error) {
	if emu == nil {
		return nil, ErrNoEmulator
	}
	r := &Runner{
		emu:    emu,
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// RunCase executes one case. Memory is prepared from the case's parameters,
// the emulator runs, and every expected output is read back and compared.
// A case that fails Validate is reported as Errored without being emulated.
func (r *Runner) RunCase(ctx context.Context, c registry.Case) Outcome {
	data := c.Data()
	out := Outcome{Case: c.Name(), Source: data.Source, Mode: c.Mode()}
	log := r.logger.With(zap.String("case", out.Case), zap.String("source", out.Source))

	if c.Disabled() {
		out.Status = Skipped
		out.Reason = c.Reason()
		log.Debug("case skipped", zap.String("reason", out.Reason))
		r.record(out)
		return out
	}
	if err := c.Validate(); err != nil {
		out.Status = Errored
		out.Err = fmt.Errorf("%w: %w", ErrInvalidCase, err)
		log.Warn("case did not complete", zap.Stringer("status", out.Status), zap.Error(out.Err))
		r.record(out)
		return out
	}

	log.Debug("case started",
		zap.Int("args", len(data.Params)),
		zap.Stringer("config", data.Config),
		zap.Uint32("max_cycles", data.MaxCycles))

	inv := emulator.NewInvocation(data)
	start := time.Now()
	stats, err := r.emu.Emulate(ctx, inv)
	out.Duration = time.Since(start)
	out.Stats = stats

	switch {
	case errors.Is(err, emulator.ErrCycleBudgetExceeded):
		out.Status = NonTerminating
		out.Err = err
	case err != nil:
		out.Status = Errored
		out.Err = fmt.Errorf("emulation failed: %w", err)
	case stats.Cycles > inv.Budget():
		out.Status = NonTerminating
		out.Err = emulator.CheckBudget(stats.Cycles, inv.Budget())
	default:
		r.compareOutputs(c, inv, &out)
	}

	switch out.Status {
	case Passed:
		log.Debug("case finished",
			zap.Stringer("status", out.Status),
			zap.Uint32("cycles", out.Stats.Cycles),
			zap.Duration("duration", out.Duration))
	case Failed:
		for _, m := range out.Mismatches {
			log.Warn("output mismatch",
				zap.String("kind", string(m.Kind)),
				zap.Int("param", m.Param),
				zap.Int("index", m.Index),
				zap.Uint64("ulp", m.ULP),
				zap.Error(m))
		}
		log.Warn("case failed", zap.Int("mismatches", len(out.Mismatches)))
	default:
		log.Warn("case did not complete",
			zap.Stringer("status", out.Status),
			zap.Uint32("cycles", out.Stats.Cycles),
			zap.Error(out.Err))
	}
	r.record(out)
	return out
}

func (r *Runner) compareOutputs(c registry.Case, inv *emulator.Invocation, out *Outcome) {
	var result verify.Result
	for _, e := range c.Expected() {
		actual, ok := inv.Memory(e.Index)
		if !ok || len(e.Words) > len(actual) {
			out.Status = Errored
			out.Err = fmt.Errorf("%w: param %d has no %d-word buffer", ErrInvalidCase, e.Index, len(e.Words))
			return
		}
		if e.Prefix {
			actual = actual[:len(e.Words)]
		}
		res := verify.Compare(actual, e.Words, verify.Options{
			Mode:      c.Mode(),
			Tolerance: c.Tolerance(),
			Case:      c.Name(),
			Param:     e.Index,
		})
		result.Mismatches = append(result.Mismatches, res.Mismatches...)
		result.MaxULP = max(result.MaxULP, res.MaxULP)
	}
	out.MaxULP = result.MaxULP
	out.Mismatches = result.Mismatches
	if result.OK() {
		out.Status = Passed
		return
	}
	out.Status = Failed
	out.Err = result.Err()
}

func (r *Runner) record(o Outcome) {
	r.metrics.RecordCase(o.Status.String(), o.Mode.String())
	if o.Status == Skipped {
		return
	}
	r.metrics.RecordCycles(o.Stats.Cycles)
	for _, m := range o.Mismatches {
		r.metrics.RecordMismatch(string(m.Kind))
	}
	if o.Mode == verify.Float && (o.Status == Passed || o.Status == Failed) {
		r.metrics.RecordULP(o.MaxULP)
	}
}

// Run executes every case of reg and reports the outcomes in registry order.
// Up to Config.Parallelism cases run at once. A cancelled ctx, or the first
// failing case under FailFast, stops scheduling; cases that never ran are
// reported as Skipped and the cause is returned alongside the report.
func (r *Runner) Run(ctx context.Context, reg *registry.Registry) (*Report, error) {
	outcomes := make([]Outcome, reg.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)

	r.logger.Info("run started",
		zap.Int("cases", reg.Len()),
		zap.Int("parallelism", r.cfg.Parallelism),
		zap.Bool("fail_fast", r.cfg.FailFast))

	for i, c := range reg.All() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Case: c.Name(), Source: c.Data().Source, Mode: c.Mode(),
					Status: Skipped, Reason: "run stopped"}
				return err
			}
			o := r.RunCase(gctx, c)
			outcomes[i] = o
			if r.cfg.FailFast && !o.Status.OK() {
				return fmt.Errorf("%s: %w", c.Name(), ErrFailFast)
			}
			return nil
		})
	}
	err := g.Wait()

	report := &Report{Outcomes: outcomes}
	r.logger.Info("run finished", zap.Stringer("report", report))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return report, ctxErr
	}
	if errors.Is(err, ErrFailFast) {
		return report, err
	}
	return report, nil
}
