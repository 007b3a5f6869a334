package domain

import "time"

// Subscription states.
const (
	SubscriptionActive      = "active"
	SubscriptionSuspended   = "suspended"
	SubscriptionCancelled   = "cancelled"
	SubscriptionDevelopment = "development"
)

// Subscription links a client to a catalog product. One per (client,
// product) pair.
type Subscription struct {
	ID          int64
	ClientID    int64
	ProductID   int64
	ProductName string
	ProductType string
	Status      string
	StartDate   time.Time
	EndDate     *time.Time
	MonthlyCost *float64
	Notes       string
}

func ValidSubscriptionStatus(s string) bool {
	switch s {
	case SubscriptionActive, SubscriptionSuspended, SubscriptionCancelled, SubscriptionDevelopment:
		return true
	}
	return false
}
