package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrMessageEmpty   = errors.New("message must be a non-empty string")
	ErrMessageTooLong = errors.New("message is too long")
)

// MaxMessageLength caps chat input. Long enough for any reasonable
// command, short enough to bound regex work on hostile input.
const MaxMessageLength = 500

func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageEmpty
	}

	if utf8.RuneCountInString(message) > MaxMessageLength {
		return ErrMessageTooLong
	}

	return nil
}
