package outline

import (
	"errors"
	"fmt"
)

// Invariant failures. None of these occur on trees produced by the parser
// and the passes themselves; seeing one means a caller or upstream contract
// was broken, and the pass that hit it stops immediately.
var (
	// ErrUnknownHeadingTag indicates a rank lookup on a tag outside h1-h6.
	ErrUnknownHeadingTag = errors.New("unknown heading tag")

	// ErrInvalidRank indicates a tag lookup for a rank outside [1,6].
	ErrInvalidRank = errors.New("heading rank out of range")

	// ErrEmptyHeadingGroup indicates an hgroup without heading children.
	ErrEmptyHeadingGroup = errors.New("heading group has no heading children")

	// ErrRankOverflow indicates a group shift that would rank above h1.
	ErrRankOverflow = errors.New("shifted heading rank overflows h1")
)

// Pass names, as used in PassError and logs.
const (
	PassGroup     = "hgroup"
	PassSection   = "section"
	PassNormalize = "normalize"
)

// PassError reports which pass aborted and on which element.
type PassError struct {
	Pass string
	Tag  string
	Err  error
}

func (e *PassError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s pass at <%s>: %v", e.Pass, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s pass: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}
