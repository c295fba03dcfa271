package types

import "errors"

// Validation errors. Field failures wrap ErrInvalidField with the entity and
// field name.
var (
	ErrNilEntity      = errors.New("entity must not be nil")
	ErrInvalidID      = errors.New("identifier must be positive")
	ErrInvalidField   = errors.New("invalid field value")
	ErrBirthDateUnset = errors.New("birth date must be set before calculating age")
)

// Cardinality errors. These are returned before either side of an
// association or any registry is mutated.
var (
	ErrDuplicateID     = errors.New("an entity with the same identifier already exists")
	ErrDuplicateMember = errors.New("a different entity with the same identifier is already associated")
	ErrCardinality     = errors.New("association bound exceeded")
)

// Invariant audit errors reported by Check.
var (
	ErrAsymmetric    = errors.New("association sides disagree")
	ErrNotRegistered = errors.New("associated entity is not registered in its extent")
)

// ErrUnknownExtent is returned for an extent name the store does not hold.
var ErrUnknownExtent = errors.New("unknown extent")
