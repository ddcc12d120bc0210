package analysis

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// Cache stores reports by position hash. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(hash uint64) (*Report, bool, error)
	Put(r *Report) error
}

// Result is the outcome for one input position. Err is set, and Report nil,
// when the FEN does not parse.
type Result struct {
	Index  int
	Report *Report
	Cached bool
	Err    error
}

// Runner analyses batches of positions on a pool of workers.
type Runner struct {
	Workers int         // <= 0 means GOMAXPROCS
	Cache   Cache       // optional
	Logger  *log.Logger // optional
	Moves   bool        // keep LegalMoves in reports
}

type job struct {
	index int
	fen   string
}

// Run analyses every FEN and returns the results in input order. A malformed
// FEN only fails its own Result; cache failures and cancellation abort the
// whole batch.
func (r *Runner) Run(ctx context.Context, fens []string) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	r.logf("analysing %d positions with %d workers", len(fens), workers)

	results := make([]Result, len(fens))

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job)

	g.Go(func() error {
		defer close(jobs)
		for i, fen := range fens {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{i, fen}:
			}
		}
		return nil
	})

	var hits, misses int
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range jobs {
				res, err := r.analyse(j)
				if err != nil {
					return err
				}
				results[j.index] = res

				if res.Err == nil {
					mu.Lock()
					if res.Cached {
						hits++
					} else {
						misses++
					}
					mu.Unlock()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.Cache != nil {
		r.logf("cache: %d hits, %d misses", hits, misses)
	}
	return results, nil
}

func (r *Runner) analyse(j job) (Result, error) {
	res := Result{Index: j.index}

	b, err := board.ParseFEN(j.fen)
	if err != nil {
		res.Err = err
		return res, nil
	}

	if r.Cache != nil {
		cached, ok, err := r.Cache.Get(b.Hash())
		if err != nil {
			return res, fmt.Errorf("cache lookup for %q: %w", j.fen, err)
		}
		if ok {
			res.Report = r.trim(cached)
			// The hash ignores the move counters, so restore this input's FEN.
			res.Report.FEN = b.FEN()
			res.Cached = true
			return res, nil
		}
	}

	report := FromBoard(b)
	if r.Cache != nil {
		if err := r.Cache.Put(report); err != nil {
			return res, fmt.Errorf("cache store for %q: %w", j.fen, err)
		}
	}
	res.Report = r.trim(report)
	return res, nil
}

// trim returns a copy of report, without the move list unless r.Moves.
func (r *Runner) trim(report *Report) *Report {
	c := *report
	if !r.Moves {
		c.LegalMoves = nil
	}
	return &c
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
