// Package errs defines the engine's error taxonomy: four kinds, shared as
// sentinels so every package wraps into the same vocabulary and callers can
// tell kinds apart with errors.Is regardless of which package produced the
// error.
package errs

import "github.com/pkg/errors"

var (
	// Configuration errors: matrix search requested without a loaded matrix,
	// or incompatible search modes requested together.
	Configuration = errors.New("tcrtrie: configuration error")

	// InputSize errors: a query longer than maxQueryLength.
	InputSize = errors.New("tcrtrie: input too large")

	// InputFormat errors: corpus file missing junction_aa, unreadable or
	// empty corpus/matrix, malformed cost matrix, or a query containing a
	// non-A-Z character.
	InputFormat = errors.New("tcrtrie: malformed input")

	// IO errors: the output file cannot be opened or written.
	IO = errors.New("tcrtrie: i/o error")
)

// Wrap annotates err with msg while preserving errors.Is(wrapped, kind) for
// whichever of the four sentinels above kind is.
func Wrap(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return wrapped{kind: kind, err: errors.Wrapf(err, "%s", msg)}
}

// New creates a fresh error of the given kind with msg as its message,
// still satisfying errors.Is(result, kind).
func New(kind error, msg string) error {
	return wrapped{kind: kind, err: errors.New(msg)}
}

type wrapped struct {
	kind error
	err  error
}

func (w wrapped) Error() string { return w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }
func (w wrapped) Is(target error) bool {
	return target == w.kind
}
