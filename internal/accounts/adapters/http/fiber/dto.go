package fiber

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	TenantID    string `json:"tenant_id"`
	IsActive    bool   `json:"is_active"`
	WebsiteURL  string `json:"website_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

type UpdateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	IsActive    bool   `json:"is_active"`
	WebsiteURL  string `json:"website_url"`
	Notes       string `json:"notes"`
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

type ProductRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type SubscriptionResponse struct {
	ID          int64    `json:"id"`
	ProductID   int64    `json:"product_id"`
	ProductName string   `json:"product_name"`
	ProductType string   `json:"product_type"`
	Status      string   `json:"status"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	MonthlyCost *float64 `json:"monthly_cost,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type AssignProductRequest struct {
	ProductID   int64    `json:"product_id"`
	Status      string   `json:"status"`
	MonthlyCost *float64 `json:"monthly_cost"`
	Notes       string   `json:"notes"`
}

type UpdateSubscriptionRequest struct {
	Status string `json:"status"`
}

type OverviewResponse struct {
	TotalClients   int64          `json:"total_clients"`
	ActiveClients  int64          `json:"active_clients"`
	RecentClients  []UserResponse `json:"recent_clients"`
	TotalProducts  int64          `json:"total_products"`
	ActiveProducts int64          `json:"active_products"`
}

type ContactRequestResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company,omitempty"`
	Project    string `json:"project"`
	Newsletter bool   `json:"newsletter"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type SubmitContactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Project    string `json:"project"`
	Newsletter bool   `json:"newsletter"`
}

type UpdateContactRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"username_taken"`
	Message string `json:"message" example:"username already exists"`
}
