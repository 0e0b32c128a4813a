package refilter

import (
	"errors"
	"fmt"
)

// ErrBuilderConsumed is returned by every Builder method that registers
// patterns or builds once Build has been called, whether Build succeeded or
// not.
var ErrBuilderConsumed = errors.New("refilter: builder already consumed by Build")

// SyntaxError reports a pattern rejected at registration. The pattern is not
// added to the corpus and patterns registered before it are unaffected.
//
// Err is usually a *syntax.Error from regexp/syntax:
//
//	var serr *syntax.Error
//	if errors.As(err, &serr) {
//	    fmt.Println(serr.Code)
//	}
type SyntaxError struct {
	// Index is the registration index the pattern would have received.
	Index int
	// Pattern is the pattern text as passed to the Builder.
	Pattern string
	// Err is the underlying parse or compile error.
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("refilter: pattern %d %q: %v", e.Index, e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// BuildError reports a corpus whose literal index could not be compiled.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("refilter: build: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
