package chat

import (
	"strings"
	"testing"
)

func TestInterpret_Generic(t *testing.T) {
	messages := []string{
		"hello",
		"what can you do?",
		"I want to buy something",
		"show me products",
	}

	for _, msg := range messages {
		intent := Interpret(msg)
		if intent.Kind != KindGeneric {
			t.Errorf("Interpret(%q): expected generic intent, got search with term %q", msg, intent.Term)
		}
	}
}

func TestInterpret_Search(t *testing.T) {
	cases := []struct {
		message string
		term    string
	}{
		{"search jeans", "jeans"},
		{"find jeans", "jeans"},
		{"SEARCH jeans", "jeans"},
		{"Find Jeans", "Jeans"},
		{"please search jeans", "please  jeans"},
		{"search   jeans  ", "jeans"},
	}

	for _, c := range cases {
		intent := Interpret(c.message)
		if intent.Kind != KindSearch {
			t.Errorf("Interpret(%q): expected search intent", c.message)
			continue
		}
		if intent.Term != c.term {
			t.Errorf("Interpret(%q): expected term %q, got %q", c.message, c.term, intent.Term)
		}
	}
}

func TestInterpret_SearchStripsAllOccurrences(t *testing.T) {
	intent := Interpret("search find search shoes")
	if intent.Kind != KindSearch {
		t.Fatal("expected search intent")
	}
	if strings.Contains(strings.ToLower(intent.Term), "search") ||
		strings.Contains(strings.ToLower(intent.Term), "find") {
		t.Errorf("trigger words remain in term: %q", intent.Term)
	}
	if !strings.Contains(intent.Term, "shoes") {
		t.Errorf("expected remainder to survive, got %q", intent.Term)
	}
}

func TestInterpret_SearchWithoutTerm(t *testing.T) {
	for _, msg := range []string{"search", "find", "search   ", "Search Find"} {
		intent := Interpret(msg)
		if intent.Kind != KindSearch {
			t.Errorf("Interpret(%q): expected search intent", msg)
			continue
		}
		if intent.Term != "" {
			t.Errorf("Interpret(%q): expected empty term, got %q", msg, intent.Term)
		}
	}
}

func TestInterpret_TriggerInsideWord(t *testing.T) {
	// "Find" inside "Findings" still triggers; documented limitation of
	// the substring test.
	intent := Interpret("Findings report")
	if intent.Kind != KindSearch {
		t.Fatal("expected search intent for embedded trigger")
	}
	if intent.Term != "ings report" {
		t.Errorf("expected mangled term 'ings report', got %q", intent.Term)
	}
}
