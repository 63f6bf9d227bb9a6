package model

import "fmt"

// Status is the outcome of processing a single file.
type Status int

const (
	// Clean means the file had no BOM and was left untouched.
	Clean Status = iota
	// Removed means the BOM was found and the file was rewritten without it.
	Removed
	// Failed means reading or rewriting the file returned an error.
	Failed
)

func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case Removed:
		return "removed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records what happened to one target file.
type Result struct {
	Path   string
	Status Status
	Err    error
}

// Message is the console line for this result.
func (r Result) Message() string {
	switch r.Status {
	case Removed:
		return fmt.Sprintf("Removing BOM from %s", r.Path)
	case Failed:
		return fmt.Sprintf("Error processing %s: %v", r.Path, r.Err)
	default:
		return fmt.Sprintf("No BOM in %s", r.Path)
	}
}

// Summary holds the results of a run for display.
type Summary struct {
	Results []Result
	Message string
}

// Removed returns the paths whose BOM was stripped, in processing order.
func (s Summary) Removed() []string { return s.paths(Removed) }

// Clean returns the paths that had no BOM.
func (s Summary) Clean() []string { return s.paths(Clean) }

// Failed returns the paths that could not be processed.
func (s Summary) Failed() []string { return s.paths(Failed) }

func (s Summary) paths(status Status) []string {
	var out []string
	for _, r := range s.Results {
		if r.Status == status {
			out = append(out, r.Path)
		}
	}
	return out
}
