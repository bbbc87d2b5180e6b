package violation

import "errors"

var (
	ErrRecordNotFound = errors.New("violation record not found")
)
