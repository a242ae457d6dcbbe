package replay

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/oracle"
	"github.com/KirkDiggler/combo-tracker/internal/services/tracker"
)

// Runner plays scripts against a tracker
type Runner struct {
	service tracker.Service
	oracle  *oracle.Static
	player  *oracle.Player
	out     io.Writer
}

// RunnerConfig holds what a runner needs
type RunnerConfig struct {
	Service tracker.Service // Required
	Oracle  *oracle.Static  // Required
	Player  *oracle.Player  // Required
	Output  io.Writer       // Optional, transcript is discarded if nil
}

// Report summarizes a run
type Report struct {
	Steps    int
	Accepted int
	Failures []string
}

// Passed reports whether every expectation held
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// NewRunner creates a Runner
func NewRunner(cfg *RunnerConfig) (*Runner, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("runner config cannot be nil")
	}
	if cfg.Service == nil {
		return nil, dnderr.InvalidArgument("tracker service is required")
	}
	if cfg.Oracle == nil {
		return nil, dnderr.InvalidArgument("oracle is required")
	}
	if cfg.Player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	return &Runner{
		service: cfg.Service,
		oracle:  cfg.Oracle,
		player:  cfg.Player,
		out:     out,
	}, nil
}

// Run plays every step in order. Script errors stop the run; failed
// expectations are collected in the report.
func (r *Runner) Run(ctx context.Context, script *Script) (*Report, error) {
	if script == nil {
		return nil, dnderr.InvalidArgument("script cannot be nil")
	}

	report := &Report{}
	if script.Name != "" {
		fmt.Fprintf(r.out, "# %s\n", script.Name)
	}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return report, dnderr.Wrapf(err, "replay stopped at step %d", i)
		}

		line, accepted, err := r.play(ctx, step)
		if err != nil {
			return report, dnderr.Wrapf(err, "step %d", i).WithMeta("step", i)
		}

		report.Steps++
		if accepted {
			report.Accepted++
		}

		failures, err := r.check(step)
		if err != nil {
			return report, dnderr.Wrapf(err, "step %d", i).WithMeta("step", i)
		}
		for _, failure := range failures {
			report.Failures = append(report.Failures, fmt.Sprintf("step %d: %s", i, failure))
		}

		fmt.Fprintf(r.out, "%3d  %-32s %s\n", i, line, r.pointers())
		for _, failure := range failures {
			fmt.Fprintf(r.out, "     FAIL %s\n", failure)
		}
	}

	fmt.Fprintf(r.out, "%d steps, %d accepted, %d failed expectations\n",
		report.Steps, report.Accepted, len(report.Failures))

	return report, nil
}

func (r *Runner) play(ctx context.Context, step Step) (string, bool, error) {
	for _, change := range step.Set {
		if err := r.apply(change); err != nil {
			return "", false, err
		}
	}

	if step.Ready != nil {
		r.player.SetReady(*step.Ready)
	}

	if step.Cast != nil {
		if step.Cast.Total > 0 {
			r.player.StartCast(step.Cast.Total, step.Cast.Elapsed)
		} else {
			r.player.StopCast()
		}
	}

	if step.Reset != nil {
		groupID := combo.GroupID(*step.Reset)
		r.service.Reset(groupID)
		if groupID == 0 {
			return "reset all", false, nil
		}
		return fmt.Sprintf("reset %d", groupID), false, nil
	}

	if step.Action == "" {
		return "update oracle", false, nil
	}

	id, err := resolve(r.oracle, step.Action)
	if err != nil {
		return "", false, err
	}

	status, err := parseStatus(step.Status)
	if err != nil {
		return "", false, err
	}
	if status == combo.StatusUnknown {
		status = r.oracle.Status(r.oracle.AdjustedID(id))
	}

	accepted := r.service.Update(ctx, combo.Trigger{ActionID: id, Status: status, Succeeded: true})
	return fmt.Sprintf("%s (%s) accepted=%t", step.Action, status, accepted), accepted, nil
}

func (r *Runner) apply(change Change) error {
	id, err := resolve(r.oracle, change.Action)
	if err != nil {
		return err
	}

	if change.Status != "" {
		status, err := combo.ParseStatus(change.Status)
		if err != nil {
			return err
		}
		r.oracle.SetStatus(id, status)
	}
	if change.Remaining != nil {
		r.oracle.SetRemaining(id, *change.Remaining)
	}
	return nil
}

func (r *Runner) check(step Step) ([]string, error) {
	groupIDs := make([]uint32, 0, len(step.Expect))
	for groupID := range step.Expect {
		groupIDs = append(groupIDs, groupID)
	}
	sort.Slice(groupIDs, func(i, j int) bool { return groupIDs[i] < groupIDs[j] })

	var failures []string
	for _, groupID := range groupIDs {
		want := step.Expect[groupID]
		wantID, err := resolve(r.oracle, want)
		if err != nil {
			return nil, err
		}

		got := r.service.Current(combo.GroupID(groupID))
		if got != wantID {
			failures = append(failures, fmt.Sprintf("group %d expected %s (%d), got %d", groupID, want, wantID, got))
		}
	}
	return failures, nil
}

func (r *Runner) pointers() string {
	groups := r.service.Groups()
	parts := make([]string, len(groups))
	for i, id := range groups {
		parts[i] = fmt.Sprintf("%d:%d", id, r.service.Current(id))
	}
	return strings.Join(parts, " ")
}
