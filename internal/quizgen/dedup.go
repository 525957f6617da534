package quizgen

import (
	"fmt"
	"strings"
)

// buildConcepts formats recent concepts for the prompt, respecting the
// max limit. Returns "None" if there are no recent concepts.
func buildConcepts(recent []string, max int) string {
	if len(recent) == 0 {
		return "None"
	}

	// Keep only the most recent N concepts.
	if max > 0 && len(recent) > max {
		recent = recent[len(recent)-max:]
	}

	var b strings.Builder
	for i, c := range recent {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return strings.TrimRight(b.String(), "\n")
}
