package domain

import "time"

// User is a portal account. Operators are flagged on the row; everyone else
// is a client tied to a tenant.
type User struct {
	ID          int64
	Username    string
	Email       string
	CompanyName string
	Phone       string
	TenantID    string // UUID, minted on create
	IsClient    bool
	IsActive    bool
	Notes       string
	WebsiteURL  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overview is the operator landing summary.
type Overview struct {
	TotalClients   int64
	ActiveClients  int64
	RecentClients  []User
	TotalProducts  int64
	ActiveProducts int64
}
