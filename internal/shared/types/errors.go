package types

import "errors"

var (
	ErrNoConfigurationSource = errors.New("no configuration source. Provide --accounts-file (and --orgs-file), --combined-file, or a settings file")
	ErrAccountNotFound       = errors.New("account not found in the configured directory")
	ErrInvalidConfiguration  = errors.New("configuration has validation errors")
)
