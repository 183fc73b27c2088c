package chat

import (
	"regexp"
	"strings"
)

// IntentKind tags the classified purpose of a chat message.
type IntentKind int

const (
	// KindGeneric means no search trigger word was present.
	KindGeneric IntentKind = iota
	// KindSearch means the message asked for a product search. Term may
	// be empty, in which case the caller asks for clarification.
	KindSearch
)

// Intent is the result of classifying one chat message. Transient,
// never persisted.
type Intent struct {
	Kind IntentKind
	Term string
}

// triggerPattern matches the literal trigger words anywhere in the
// message, case-insensitively, including inside longer words. That is
// the documented contract: a keyword test, not a parser. Stripping the
// triggers out of a term like "searchlight" mangles it; accepted
// limitation.
var triggerPattern = regexp.MustCompile(`(?i)search|find`)

// Interpret classifies a chat message. The caller must have already
// rejected empty or whitespace-only input.
func Interpret(message string) Intent {
	if !triggerPattern.MatchString(message) {
		return Intent{Kind: KindGeneric}
	}

	term := strings.TrimSpace(triggerPattern.ReplaceAllString(message, ""))
	return Intent{Kind: KindSearch, Term: term}
}
