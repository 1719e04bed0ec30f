package clientpool

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedAddressKind means the chain's address kind has no derivation yet.
	ErrUnsupportedAddressKind = errors.New("unsupported address kind")
	// ErrKeyDerivation means no key material could be derived for the allocated index.
	ErrKeyDerivation = errors.New("key derivation failed")
	// ErrClientInit means the signing client constructor failed.
	ErrClientInit = errors.New("signing client init failed")
)

// CreateError tags a failed Create with its failure kind and, once allocated, the derivation index.
// errors.Is matches the kind sentinel; errors.Unwrap yields the cause.
type CreateError struct {
	Kind     error
	Index    uint32
	HasIndex bool
	Err      error
}

func (e *CreateError) Error() string {
	if e.HasIndex {
		return fmt.Sprintf("%v (derivation index %d): %v", e.Kind, e.Index, e.Err)
	}

	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

func (e *CreateError) Is(target error) bool {
	return target == e.Kind
}

func newIndexedError(kind error, index uint32, err error) *CreateError {
	return &CreateError{Kind: kind, Index: index, HasIndex: true, Err: err}
}
