package repository

import "errors"

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is wrapped when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("already exists")
