package constants

// Table names
const (
	TableUsers         = "users"
	TablePackages      = "packages"
	TableSubscriptions = "subscriptions"
	TablePayments      = "payments"
	TableRenewals      = "renewals"
)

// Pagination
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by middleware
const (
	ContextKeyUserID = "user_id"
)
