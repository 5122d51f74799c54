package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by NewAppInfoService when no
	// application version was configured.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
