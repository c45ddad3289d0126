package app

import "errors"

// ErrPersist wraps a storage failure after an in-memory change was applied.
// The change is kept; only the write is lost.
var ErrPersist = errors.New("failed to persist change")
