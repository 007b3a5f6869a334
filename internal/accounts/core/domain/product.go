package domain

import "time"

// Product types offered in the catalog.
const (
	ProductChatbot      = "chatbot"
	ProductWebSimple    = "web_simple"
	ProductSuitCommerce = "suit_commerce"
	ProductAutomation   = "automation"
	ProductMigration    = "data_migration"
	ProductCustomDev    = "custom_development"
)

// Product lifecycle states.
const (
	ProductStatusActive       = "active"
	ProductStatusMaintenance  = "maintenance"
	ProductStatusDiscontinued = "discontinued"
)

type Product struct {
	ID          int64
	Name        string
	Type        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidProductType(t string) bool {
	switch t {
	case ProductChatbot, ProductWebSimple, ProductSuitCommerce,
		ProductAutomation, ProductMigration, ProductCustomDev:
		return true
	}
	return false
}

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusMaintenance, ProductStatusDiscontinued:
		return true
	}
	return false
}
