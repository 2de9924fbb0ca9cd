package dto

// SubscriptionDTO is the presentation shape of a subscription.
type SubscriptionDTO struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	PackageID  uint   `json:"package_id"`
	PaymentID  *uint  `json:"payment_id,omitempty"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
	ExpiryDate string `json:"expiry_date"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	Payment *PaymentDTO `json:"payment,omitempty"`
}

// PaymentDTO is the presentation shape of a payment.
type PaymentDTO struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"user_id"`
	PackageID      uint    `json:"package_id"`
	SubscriptionID *uint   `json:"subscription_id,omitempty"`
	TransactionID  *string `json:"transaction_id,omitempty"`
	Amount         uint64  `json:"amount"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentDate    string  `json:"payment_date"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}

// RenewalDTO is the presentation shape of a renewal history row.
type RenewalDTO struct {
	ID             uint   `json:"id"`
	SubscriptionID uint   `json:"subscription_id"`
	UserID         uint   `json:"user_id"`
	PackageID      uint   `json:"package_id"`
	OldPackageID   uint   `json:"old_package_id"`
	Amount         uint64 `json:"amount"`
	OldAmount      uint64 `json:"old_amount"`
	OldExpiryDate  string `json:"old_expiry_date"`
	NewExpiryDate  string `json:"new_expiry_date"`
	RenewalDate    string `json:"renewal_date"`
}

// SubscribeResultDTO is returned from Subscribe with the package details the
// client needs to render a confirmation.
type SubscribeResultDTO struct {
	Subscription *SubscriptionDTO `json:"subscription"`
	PackageName  string           `json:"package_name"`
	Price        uint64           `json:"price"`
	ValidityDays int              `json:"validity_days"`
	ExpiryDate   string           `json:"expiry_date"`
}

// RenewalStatsDTO aggregates renewal volume over a month.
type RenewalStatsDTO struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Count         int64   `json:"count"`
	TotalRevenue  uint64  `json:"total_revenue"`
	AverageAmount float64 `json:"average_amount"`
}
