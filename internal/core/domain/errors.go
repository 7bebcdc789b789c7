package domain

import "errors"

// ErrValidation marks caller errors: malformed or out-of-enum input detected
// before any storage call.
var ErrValidation = errors.New("validation failed")

// ErrStorage marks server errors: the document store rejected the operation
// or is unreachable.
var ErrStorage = errors.New("storage error")

// ErrNotConfigured is reported when no document store was configured at
// startup. The diagnostic endpoint surfaces it as a field value; data paths
// treat it as a storage failure.
var ErrNotConfigured = errors.New("document store not configured")
