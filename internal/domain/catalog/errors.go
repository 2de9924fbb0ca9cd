package catalog

import "errors"

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrPackageInactive   = errors.New("package inactive")
	ErrPackageReferenced = errors.New("package is referenced by subscriptions")
)
