package domain

import "errors"

// FilePair is one directional unit of work: the primary export diffed against the secondary.
// (A, B) and (B, A) are distinct pairs.
type FilePair struct {
	Primary   string
	Secondary string
}

// NewFilePair creates a FilePair.
func NewFilePair(primary, secondary string) FilePair {
	return FilePair{Primary: primary, Secondary: secondary}
}

// IsZero reports whether the pair is empty.
func (p FilePair) IsZero() bool {
	return p.Primary == "" && p.Secondary == ""
}

// String renders the pair the way it appears in operator messages.
func (p FilePair) String() string {
	return p.Primary + " vs " + p.Secondary
}

// FailureMessage renders the outcome line of a pair that could not be diffed.
func FailureMessage(pair FilePair, err error) string {
	if errors.Is(err, ErrResourceExhausted) {
		return "out of memory diffing " + pair.String()
	}
	return "while diffing " + pair.String() + ": " + err.Error()
}
