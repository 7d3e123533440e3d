package repository

import "errors"

// ErrNotFound is returned when a lookup matches no rows. Callers wrap
// it with the entity name, so errors.Is works across repositories.
var ErrNotFound = errors.New("not found")
