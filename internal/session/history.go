package session

// RecentConceptWindow is how many recent concepts are surfaced to the
// generator for deduplication.
const RecentConceptWindow = 5

// ConceptHistory tracks every concept covered in a session, in order.
// The full history feeds the summary; only the most recent window is
// surfaced to the generator.
type ConceptHistory struct {
	concepts []string
}

// Add appends a concept to the history. Empty concepts are ignored.
func (h *ConceptHistory) Add(concept string) {
	if concept == "" {
		return
	}
	h.concepts = append(h.concepts, concept)
}

// Recent returns the last RecentConceptWindow concepts, oldest first.
func (h *ConceptHistory) Recent() []string {
	if len(h.concepts) <= RecentConceptWindow {
		return append([]string(nil), h.concepts...)
	}
	return append([]string(nil), h.concepts[len(h.concepts)-RecentConceptWindow:]...)
}

// Distinct returns the unique concepts covered, in first-seen order.
func (h *ConceptHistory) Distinct() []string {
	seen := make(map[string]bool, len(h.concepts))
	var out []string
	for _, c := range h.concepts {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Len returns the total number of concepts recorded, including repeats.
func (h *ConceptHistory) Len() int {
	return len(h.concepts)
}
