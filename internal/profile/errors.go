package profile

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMismatchedProfileText is matched by every parse failure.
var ErrMismatchedProfileText = errors.New("mismatched profile text")

// MismatchedProfileTextError is the only error the parsers return. It is
// raised for empty text, text no grammar accepts, and catalog lookups that
// find nothing.
type MismatchedProfileTextError struct {
	Text   string
	Family Family // FamilyUnknown when classification itself failed
	Reason string
}

func (e *MismatchedProfileTextError) Error() string {
	if e.Family == FamilyUnknown {
		return fmt.Sprintf("mismatched profile text %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("mismatched profile text %q (%s): %s", e.Text, e.Family, e.Reason)
}

// Is lets errors.Is match the sentinel.
func (e *MismatchedProfileTextError) Is(target error) bool {
	return target == ErrMismatchedProfileText
}

// IsMismatch reports whether err is, or wraps, a MismatchedProfileTextError.
func IsMismatch(err error) bool {
	var m *MismatchedProfileTextError
	return errors.As(err, &m)
}

func mismatch(text string, f Family, reason string) error {
	err := errors.WithStack(&MismatchedProfileTextError{Text: text, Family: f, Reason: reason})
	return errors.WithDetail(err, reason)
}

func noGrammar(text string, f Family) error {
	return mismatch(text, f, "no grammar matched")
}

func noRecord(text string, f Family, name string) error {
	return errors.WithHintf(
		mismatch(text, f, fmt.Sprintf("no catalog record for %s", name)),
		"give the dimensions explicitly instead of a catalog size",
	)
}
