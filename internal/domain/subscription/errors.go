package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNoPackageAssigned    = errors.New("subscription has no package assigned")
	ErrRenewalNotFound      = errors.New("renewal not found")
	ErrRenewalNotLatest     = errors.New("renewal is not the most recent one for its subscription")
)
