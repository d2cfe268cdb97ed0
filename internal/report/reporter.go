package report

import (
	"cmp"
	"fmt"
	"go/token"
	"io"
	"slices"
	"sync"

	"github.com/sirkon/haikulint/internal/haikurules"
)

// Reporter collects rule violations.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	RuleCode   haikurules.Rule
	Pos        token.Pos
	Definition string
	Message    string
	Syllables  []int
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	if rep.Message == "" {
		rep.Message = rep.RuleCode.Description()
	}

	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Reports returns a snapshot of all collected records ordered by position.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	slices.SortStableFunc(out, func(a, b Report) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return out
}

// Len returns the number of collected reports.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// PrintSummary prints all collected reports in a compact, human-readable form.
// A nil fset prints definitions without positions.
func (r *Reporter) PrintSummary(w io.Writer, fset *token.FileSet) error {
	for _, rep := range r.Reports() {
		var err error
		if fset != nil && rep.Pos.IsValid() {
			pos := fset.Position(rep.Pos)
			_, err = fmt.Fprintf(w, "%s:%d: [%s] %s\n%s", pos.Filename, pos.Line, rep.RuleCode, rep.Definition, rep.Message)
		} else {
			_, err = fmt.Fprintf(w, "[%s] %s\n%s", rep.RuleCode, rep.Definition, rep.Message)
		}
		if err != nil {
			return fmt.Errorf("print report for %s: %w", rep.Definition, err)
		}
	}

	return nil
}
