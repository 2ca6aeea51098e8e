package rules

import (
	"errors"
	"fmt"
)

// ErrMalformedRule is returned when a rule cannot be compiled. Rules are
// static, so this always indicates a defect in the rule document.
var ErrMalformedRule = errors.New("malformed rule pattern")

func malformed(pattern, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedRule, pattern, fmt.Sprintf(format, args...))
}
