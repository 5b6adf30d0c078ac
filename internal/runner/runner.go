package runner

import (
	"sync"

	"github.com/charmbracelet/log"

	"ebuildkit/internal/checks"
	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
)

// Runner fans packages out to a pool of workers, each running every
// configured check, and collects the findings.
type Runner struct {
	workers int
	checks  []checks.Check
	log     *log.Logger
}

// New creates a runner. Workers below 1 are clamped to 1.
func New(workers int, cs []checks.Check, logger *log.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, checks: cs, log: logger}
}

// Scan runs all checks over all packages and returns the sorted results.
func (r *Runner) Scan(pkgs []*repo.Package) []report.Result {
	jobChan := make(chan *repo.Package, len(pkgs))
	resultChan := make(chan []report.Result, len(pkgs))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pkg := range jobChan {
				resultChan <- r.scanOne(pkg)
			}
		}()
	}

	for _, pkg := range pkgs {
		jobChan <- pkg
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []report.Result
	for rs := range resultChan {
		results = append(results, rs...)
	}

	report.Sort(results)
	return results
}

func (r *Runner) scanOne(pkg *repo.Package) []report.Result {
	var results []report.Result
	for _, c := range r.checks {
		rs := c.Run(pkg)
		if len(rs) > 0 {
			r.log.Debug("check hit", "check", c.Name(), "atom", pkg.Atom(), "results", len(rs))
		}
		results = append(results, rs...)
	}
	return results
}
