/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/suparena/itemstore"
	"github.com/suparena/itemstore/storagemodels"
)

// Runner executes scripts against a registry. Step headers go to Out and
// failure lines to Err, which defaults to Out.
type Runner struct {
	Registry *itemstore.Registry
	Out      io.Writer
	Err      io.Writer
	Logger   *slog.Logger
}

// Report summarizes a run.
type Report struct {
	Steps   int
	Failed  int
	Errors  []error
	Listing []storagemodels.Listing
}

// Run executes every step of s in order. A failing step is reported and the
// run continues; Run itself never fails.
func (r *Runner) Run(s *Script) Report {
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	errOut := r.Err
	if errOut == nil {
		errOut = out
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("script", s.Name)

	if s.Title != "" {
		fmt.Fprintln(out, s.Title)
	}

	var report Report
	for i, step := range s.Steps {
		op, err := step.Op()
		if err == nil {
			err = r.exec(out, op, step, &report)
		}
		report.Steps++
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, err)
			fmt.Fprintf(errOut, "Error %v\n", err)
			logger.Warn("step failed", "step", i+1, "op", op, "error", err)
		}
	}

	logger.Debug("script finished", "steps", report.Steps, "failed", report.Failed)
	return report
}

func (r *Runner) exec(out io.Writer, op Op, step Step, report *Report) error {
	switch op {
	case OpAdd:
		fmt.Fprintf(out, "Adding item: %s - %s\n", step.Add.ID, step.Add.Description)
		return r.Registry.Add(step.Add.Item())
	case OpFind:
		fmt.Fprintf(out, "Retrieving %s...\n", *step.Find)
		_, err := r.Registry.FindByID(*step.Find)
		return err
	case OpRemove:
		fmt.Fprintf(out, "Removing %s...\n", *step.Remove)
		return r.Registry.Remove(*step.Remove)
	case OpList:
		fmt.Fprintln(out, "Listing items by description...")
		report.Listing = r.Registry.ListByDescription()
		return nil
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}
