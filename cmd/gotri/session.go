package main

import (
	"context"
	"errors"

	"github.com/philipparndt/gotri/internal/history"
	"github.com/philipparndt/gotri/internal/report"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// session carries what every solving command needs: the configured solver
// and, when enabled, the history store.
type session struct {
	solver  *triangle.Solver
	history *history.Store
}

func openSession() (*session, error) {
	opts := []triangle.Option{triangle.WithTolerance(cfg.Solver.Tolerance)}
	if cfg.Solver.Lenient {
		opts = append(opts, triangle.WithLenient())
	}
	s := &session{solver: triangle.NewSolver(opts...)}

	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		s.history = store
		logger.Printf("recording history in %s", cfg.History.Path)
	}
	return s, nil
}

func (s *session) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}

// solve runs one request and records it; a failed solve is part of the
// result, only a history failure is returned as an error
func (s *session) solve(ctx context.Context, name string, in triangle.MeasurementSet) (report.Result, error) {
	sol, err := s.solver.Solve(in)
	res := report.Result{Name: name, Input: in, Solution: sol, Err: err}

	switch {
	case err != nil:
		logger.Printf("%s: %v", name, err)
	case sol.Rule == "":
		logger.Printf("%s: no rule matched, input returned unchanged", name)
	default:
		logger.Printf("%s: solved by rule %s", name, sol.Rule)
		for _, v := range triangle.Check(sol.Set, 1e-6) {
			logger.Printf("%s: identity check failed: %s", name, v)
		}
	}

	if s.history != nil {
		if _, herr := s.history.Record(ctx, name, in, sol, err); herr != nil {
			return res, herr
		}
	}
	return res, nil
}

func reportOptions() report.Options {
	return report.Options{
		Format:    cfg.Output.Format,
		Precision: cfg.Output.Precision,
		Locale:    cfg.Output.Locale,
	}
}

// errSomeFailed makes the process exit non-zero after the report is printed
var errSomeFailed = errors.New("one or more triangles could not be solved")

func anyFailed(results []report.Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
