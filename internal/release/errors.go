package release

import "errors"

var (
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrMissingEnvironment = errors.New("environment is required")
	ErrMissingVersion     = errors.New("version is required")
)
