package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/justlaunchdoom/jld/internal/launch"
)

// ErrAmbiguous is returned when a file name matches more than one entry
var ErrAmbiguous = errors.New("name matches more than one entry")

// NotFoundError is returned by Resolve when nothing matches. Suggestion is
// the closest file name in the list, if any.
type NotFoundError struct {
	Query      string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%q not found", e.Query)
	}
	return fmt.Sprintf("%q not found, did you mean %q?", e.Query, e.Suggestion)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotInList
}

// Resolve finds the entry of list that query refers to: an exact path, or
// failing that a unique file name compared without case.
func Resolve(list []string, query string) (string, error) {
	if slices.Contains(list, query) {
		return query, nil
	}

	var matches []string
	for _, p := range list {
		if strings.EqualFold(launch.BaseName(p), query) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &NotFoundError{Query: query, Suggestion: closest(list, query)}
	default:
		return "", fmt.Errorf("%w: %q could be %s", ErrAmbiguous, query, strings.Join(matches, ", "))
	}
}

// closest returns the file name in list nearest to query by edit distance.
// Names more than half the query length away are not suggested.
func closest(list []string, query string) string {
	best := ""
	bestDist := len(query)/2 + 1
	q := strings.ToLower(query)
	for _, p := range list {
		name := launch.BaseName(p)
		if d := levenshtein.ComputeDistance(q, strings.ToLower(name)); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
