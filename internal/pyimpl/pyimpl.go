package pyimpl

import (
	"fmt"
	"regexp"
	"strings"
)

// FlagPrefix is prepended to an implementation token to form its USE flag.
const FlagPrefix = "python_targets_"

// ErrMalformedIdentifier is wrapped by Parse for tokens that do not match a
// recognized interpreter-name-plus-version shape.
var ErrMalformedIdentifier = fmt.Errorf("malformed interpreter identifier")

// Implementation describes one supported interpreter, derived entirely from
// its identifier token.
type Implementation struct {
	Token string // original identifier, e.g. "python3_10" or "python3.10"
	Slot  string // normalized version slot, e.g. "3.10"
}

var tokenRe = regexp.MustCompile(`^(python[23][._][0-9]+|pypy3(?:[._][0-9]+)?|pypy)$`)

// Parse validates an implementation token and derives its slot. The version
// separator is normalized from underscore to dot; the dotted spelling passes
// through unchanged. Tokens that do not match the recognized shape fail with
// ErrMalformedIdentifier rather than producing a malformed flag name.
func Parse(token string) (Implementation, error) {
	if !tokenRe.MatchString(token) {
		return Implementation{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, token)
	}

	raw := strings.TrimPrefix(token, "python")
	raw = strings.TrimPrefix(raw, "pypy")
	raw = strings.Replace(raw, "_", ".", 1)
	if raw == "" || raw == "3" {
		// bare pypy / pypy3 installs into a single slot
		raw = "0"
	}

	return Implementation{Token: token, Slot: raw}, nil
}

// ParseAll parses every token in order, failing on the first malformed one.
func ParseAll(tokens []string) ([]Implementation, error) {
	impls := make([]Implementation, 0, len(tokens))
	for _, t := range tokens {
		impl, err := Parse(t)
		if err != nil {
			return nil, err
		}
		impls = append(impls, impl)
	}
	return impls, nil
}

// Flag returns the USE flag exposed for this implementation.
func (i Implementation) Flag() string {
	return FlagPrefix + i.Token
}

// PyPy reports whether the implementation is a PyPy interpreter.
func (i Implementation) PyPy() bool {
	return strings.HasPrefix(i.Token, "pypy")
}

// RuntimePackage returns the category/package of the interpreter runtime.
func (i Implementation) RuntimePackage() string {
	if i.PyPy() {
		return "dev-python/pypy3"
	}
	return "dev-lang/python"
}
