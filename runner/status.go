// File: runner/status.go

package runner

import (
	"fmt"
	"time"

	"github.com/notargets/emucheck/emulator"
	"github.com/notargets/emucheck/verify"
)

// Status classifies the outcome of one case
type Status uint8

const (
	// Passed: every expected output matched
	Passed Status = iota
	// Failed: the kernel finished but some output did not match
	Failed
	// NonTerminating: the kernel exceeded its cycle budget; outputs were not compared
	NonTerminating
	// Errored: the emulator could not execute the kernel
	Errored
	// Skipped: the case is disabled or the run stopped before reaching it
	Skipped
)

var statusNames = [...]string{
	Passed:         "passed",
	Failed:         "failed",
	NonTerminating: "non_terminating",
	Errored:        "errored",
	Skipped:        "skipped",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// OK reports whether s does not count against the run
func (s Status) OK() bool {
	return s == Passed || s == Skipped
}

// Outcome is the result of running one case
type Outcome struct {
	Case     string
	Source   string
	Mode     verify.Mode
	Status   Status
	Reason   string // why a case was skipped
	Stats    emulator.Stats
	Duration time.Duration
	// MaxULP is the largest finite ULP distance across all compared outputs
	MaxULP     uint64
	Mismatches []*verify.Mismatch
	// Err explains every status but Passed and Skipped
	Err error
}

func (o Outcome) String() string {
	switch o.Status {
	case Passed:
		return fmt.Sprintf("%s: %s (%d cycles)", o.Case, o.Status, o.Stats.Cycles)
	case Skipped:
		return fmt.Sprintf("%s: %s (%s)", o.Case, o.Status, o.Reason)
	default:
		return fmt.Sprintf("%s: %s: %v", o.Case, o.Status, o.Err)
	}
}
