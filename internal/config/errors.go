package config

import "github.com/pkg/errors"

// ErrMissingKey is returned by New when a required override is absent.
var ErrMissingKey = errors.New("required key missing")
