package deal

import "errors"

// Failure kinds surfaced by deal operations. Services wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify with errors.Is.
var (
	// ErrNotFound means the referenced deal is not known to the store.
	ErrNotFound = errors.New("deal not found")

	// ErrUnknownStage means a stage transition targeted a stage id that is
	// not a member of the active pipeline's registry.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrInvalid means required deal fields are missing or out of range.
	ErrInvalid = errors.New("invalid deal")
)
