// Package batch resolves many citation lines concurrently. Each line is
// an independent compound input with its own parse context. This is a
// pure package, resolving is computation, not I/O.
package batch

import (
	"context"
	"runtime"

	"github.com/jimiaki7/gegraptai/pkg/ref"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of resolving one input line.
type Result struct {
	// Line is the 1-based position of the input.
	Line int `json:"line"`

	// Input is the original text.
	Input string `json:"input"`

	// References are the resolved references in clause order. Empty when
	// nothing could be resolved.
	References []ref.Reference `json:"references"`
}

// Resolver resolves batches of inputs concurrently.
type Resolver interface {
	// Resolve parses every line and returns the results in input order.
	// It stops early and returns the context error if ctx is canceled.
	Resolve(ctx context.Context, lines []string) ([]Result, error)

	// JobsNumber is the number of concurrent workers.
	JobsNumber() int
}

type resolver struct {
	parser *ref.Parser
	jobs   int
}

// New creates a Resolver with the given parser and number of workers.
// If jobsNum is 0 or less, it defaults to runtime.NumCPU().
func New(p *ref.Parser, jobsNum int) Resolver {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}
	if p == nil {
		p = ref.Default()
	}
	return &resolver{parser: p, jobs: jobsNum}
}

func (r *resolver) JobsNumber() int {
	return r.jobs
}

func (r *resolver) Resolve(
	ctx context.Context,
	lines []string,
) ([]Result, error) {
	res := make([]Result, len(lines))
	chIn := make(chan int)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range lines {
			if err := gCtx.Err(); err != nil {
				return err
			}
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	// every worker writes only to the indices it received
	for range r.jobs {
		g.Go(func() error {
			for i := range chIn {
				res[i] = Result{
					Line:       i + 1,
					Input:      lines[i],
					References: r.parser.ParseCompound(lines[i]),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
