package repository

import "errors"

// ErrNoRowsAffected is returned by writes addressed to a row that does not exist.
var ErrNoRowsAffected = errors.New("no rows affected")
