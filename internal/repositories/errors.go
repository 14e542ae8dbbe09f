package repositories

import "errors"

// ErrNotFound is returned (wrapped) when a lookup or targeted write matches no row.
var ErrNotFound = errors.New("record not found")
