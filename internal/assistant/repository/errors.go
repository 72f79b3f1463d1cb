package repository

import "errors"

var (
	ErrNotFound = errors.New("batch not found")
)
