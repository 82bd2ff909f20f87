package types

import "errors"

var (
	ErrOrganizationNotFound  = errors.New("organization not found in catalog")
	ErrInvalidHorizon        = errors.New("horizon must be 3 or 5 years")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrEmptyCatalogEntry     = errors.New("catalog entry without id")
	ErrDuplicateOrganization = errors.New("organization id declared more than once")
)
