package session

import (
	"reflect"
	"testing"
)

func TestConceptHistoryRecentWindow(t *testing.T) {
	var h ConceptHistory

	if got := h.Recent(); len(got) != 0 {
		t.Errorf("empty history: got %v", got)
	}

	for _, c := range []string{"a", "b", "c"} {
		h.Add(c)
	}
	if got := h.Recent(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("recent = %v", got)
	}

	for _, c := range []string{"d", "e", "f", "g"} {
		h.Add(c)
	}
	want := []string{"c", "d", "e", "f", "g"}
	if got := h.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("recent = %v, want %v", got, want)
	}
}

func TestConceptHistoryDistinct(t *testing.T) {
	var h ConceptHistory
	for _, c := range []string{"a", "b", "a", "c", "b", "a"} {
		h.Add(c)
	}

	want := []string{"a", "b", "c"}
	if got := h.Distinct(); !reflect.DeepEqual(got, want) {
		t.Errorf("distinct = %v, want %v", got, want)
	}
	if h.Len() != 6 {
		t.Errorf("len = %d, want 6", h.Len())
	}
}

func TestConceptHistoryIgnoresEmpty(t *testing.T) {
	var h ConceptHistory
	h.Add("")
	h.Add("a")
	h.Add("")

	if h.Len() != 1 {
		t.Errorf("len = %d, want 1", h.Len())
	}
}

func TestConceptHistoryRecentIsCopy(t *testing.T) {
	var h ConceptHistory
	h.Add("a")
	h.Add("b")

	got := h.Recent()
	got[0] = "mutated"
	if h.Recent()[0] != "a" {
		t.Error("Recent returned a view into internal state")
	}
}
