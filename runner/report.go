// File: runner/report.go

package runner

import (
	"fmt"
	"strings"

	"github.com/notargets/emucheck/verify"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report collects the outcomes of a run in registry order
type Report struct {
	Outcomes []Outcome
}

// Count returns the number of outcomes with status s
func (rp *Report) Count(s Status) int {
	var n int
	for _, o := range rp.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Failures returns every outcome that counts against the run
func (rp *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range rp.Outcomes {
		if !o.Status.OK() {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether every case passed or was skipped
func (rp *Report) OK() bool {
	return len(rp.Failures()) == 0
}

// Err combines the errors of all failures, nil if the run is OK
func (rp *Report) Err() error {
	var err error
	for _, o := range rp.Failures() {
		err = multierr.Append(err, fmt.Errorf("%s: %s: %w", o.Case, o.Status, o.Err))
	}
	return err
}

// ULPStats summarizes the largest ULP distance of each compared float case.
// n is the number of cases summarized; max and mean are 0 when n is 0.
func (rp *Report) ULPStats() (maxULP, mean float64, n int) {
	var ulps []float64
	for _, o := range rp.Outcomes {
		if o.Mode == verify.Float && (o.Status == Passed || o.Status == Failed) {
			ulps = append(ulps, float64(o.MaxULP))
		}
	}
	if len(ulps) == 0 {
		return 0, 0, 0
	}
	return floats.Max(ulps), stat.Mean(ulps, nil), len(ulps)
}

func (rp *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d cases:", len(rp.Outcomes))
	for i, s := range []Status{Passed, Failed, NonTerminating, Errored, Skipped} {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, " %d %s", rp.Count(s), s)
	}
	return sb.String()
}
