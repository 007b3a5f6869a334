package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"client-portal-service/internal/accounts/core/domain"
	"client-portal-service/internal/accounts/core/usecase"
	"client-portal-service/internal/auth"
)

type ManageUsersUseCase interface {
	List(ctx context.Context, search string) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in usecase.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, in usecase.UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
}

type ManageProductsUseCase interface {
	List(ctx context.Context, search string) ([]domain.Product, error)
	Create(ctx context.Context, in usecase.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, in usecase.ProductInput) error
	Delete(ctx context.Context, id int64) error
}

type ManageSubscriptionsUseCase interface {
	ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)
	ClientDashboard(ctx context.Context, clientID int64) ([]domain.Subscription, error)
	Assign(ctx context.Context, in usecase.AssignProductInput) error
	UpdateStatus(ctx context.Context, clientID, productID int64, status string) error
	Remove(ctx context.Context, clientID, productID int64) error
}

type GetOverviewUseCase interface {
	Execute(ctx context.Context) (*domain.Overview, error)
}

type ManageContactsUseCase interface {
	Submit(ctx context.Context, in usecase.SubmitContactInput) (*domain.ContactRequest, error)
	List(ctx context.Context, status string) ([]domain.ContactRequest, error)
	Get(ctx context.Context, id int64) (*domain.ContactRequest, error)
	Update(ctx context.Context, in usecase.UpdateContactInput) error
	Delete(ctx context.Context, id int64) error
	NewsletterRecipients(ctx context.Context) ([]string, error)
}

type AccountsHandler struct {
	users    ManageUsersUseCase
	products ManageProductsUseCase
	subs     ManageSubscriptionsUseCase
	overview GetOverviewUseCase
	contacts ManageContactsUseCase
}

func NewAccountsHandler(
	users ManageUsersUseCase,
	products ManageProductsUseCase,
	subs ManageSubscriptionsUseCase,
	overview GetOverviewUseCase,
	contacts ManageContactsUseCase,
) *AccountsHandler {
	return &AccountsHandler{
		users:    users,
		products: products,
		subs:     subs,
		overview: overview,
		contacts: contacts,
	}
}

// GetOverview godoc
// @Summary Operator landing summary
// @Tags Admin
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/overview [get]
func (h *AccountsHandler) GetOverview(c *fiber.Ctx) error {
	ov, err := h.overview.Execute(c.Context())
	if err != nil {
		return writeAccountsError(c, err)
	}

	resp := OverviewResponse{
		TotalClients:   ov.TotalClients,
		ActiveClients:  ov.ActiveClients,
		RecentClients:  toUserResponses(ov.RecentClients),
		TotalProducts:  ov.TotalProducts,
		ActiveProducts: ov.ActiveProducts,
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListUsers godoc
// @Summary List client accounts
// @Tags Admin
// @Produce json
// @Param search query string false "Matches username, email or company"
// @Success 200 {array} UserResponse
// @Router /admin/users [get]
func (h *AccountsHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context(), c.Query("search", ""))
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toUserResponses(users))
}

// GetUser godoc
// @Summary Fetch one client account
// @Tags Admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [get]
func (h *AccountsHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	u, err := h.users.Get(c.Context(), int64(id))
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(*u))
}

// CreateUser godoc
// @Summary Create a client account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New user"
// @Success 201 {object} UserResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/users [post]
func (h *AccountsHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	u, err := h.users.Create(c.Context(), usecase.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toUserResponse(*u))
}

// UpdateUser godoc
// @Summary Update a client account
// @Tags Admin
// @Accept json
// @Param id path int true "User id"
// @Param request body UpdateUserRequest true "Updated fields"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [put]
func (h *AccountsHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	err = h.users.Update(c.Context(), usecase.UpdateUserInput{
		ID:          int64(id),
		Username:    req.Username,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		IsActive:    req.IsActive,
		WebsiteURL:  req.WebsiteURL,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary Delete a client account
// @Tags Admin
// @Param id path int true "User id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AccountsHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	if err := h.users.Delete(c.Context(), int64(id)); err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListProducts godoc
// @Summary List the product catalog
// @Tags Admin
// @Produce json
// @Param search query string false "Matches name, description or type"
// @Success 200 {array} ProductResponse
// @Router /admin/products [get]
func (h *AccountsHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context(), c.Query("search", ""))
	if err != nil {
		return writeAccountsError(c, err)
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateProduct godoc
// @Summary Create a catalog product
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body ProductRequest true "New product"
// @Success 201 {object} ProductResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/products [post]
func (h *AccountsHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	p, err := h.products.Create(c.Context(), usecase.ProductInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toProductResponse(*p))
}

// UpdateProduct godoc
// @Summary Update a catalog product
// @Tags Admin
// @Accept json
// @Param id path int true "Product id"
// @Param request body ProductRequest true "Updated fields"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (h *AccountsHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "product id must be an integer")
	}
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	err = h.products.Update(c.Context(), usecase.ProductInput{
		ID:          int64(id),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteProduct godoc
// @Summary Delete a catalog product
// @Tags Admin
// @Param id path int true "Product id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *AccountsHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "product id must be an integer")
	}
	if err := h.products.Delete(c.Context(), int64(id)); err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListUserProducts godoc
// @Summary List a client's subscriptions
// @Tags Admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {array} SubscriptionResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/products [get]
func (h *AccountsHandler) ListUserProducts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	subs, err := h.subs.ListByClient(c.Context(), int64(id))
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toSubscriptionResponses(subs))
}

// AssignProduct godoc
// @Summary Assign a product to a client
// @Tags Admin
// @Accept json
// @Param id path int true "User id"
// @Param request body AssignProductRequest true "Assignment"
// @Success 201
// @Failure 409 {object} ErrorResponse
// @Router /admin/users/{id}/products [post]
func (h *AccountsHandler) AssignProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	var req AssignProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	err = h.subs.Assign(c.Context(), usecase.AssignProductInput{
		ClientID:    int64(id),
		ProductID:   req.ProductID,
		Status:      req.Status,
		MonthlyCost: req.MonthlyCost,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusCreated)
}

// UpdateSubscription godoc
// @Summary Change a subscription's status
// @Tags Admin
// @Accept json
// @Param id path int true "User id"
// @Param productID path int true "Product id"
// @Param request body UpdateSubscriptionRequest true "New status"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/products/{productID} [put]
func (h *AccountsHandler) UpdateSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return badRequest(c, "product id must be an integer")
	}
	var req UpdateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	if err := h.subs.UpdateStatus(c.Context(), int64(id), int64(productID), req.Status); err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// RemoveSubscription godoc
// @Summary Remove a product from a client
// @Tags Admin
// @Param id path int true "User id"
// @Param productID path int true "Product id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/products/{productID} [delete]
func (h *AccountsHandler) RemoveSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "user id must be an integer")
	}
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return badRequest(c, "product id must be an integer")
	}

	if err := h.subs.Remove(c.Context(), int64(id), int64(productID)); err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// SubmitContact godoc
// @Summary Submit a contact request
// @Tags Public
// @Accept json
// @Produce json
// @Param request body SubmitContactRequest true "Contact form"
// @Success 201 {object} ContactRequestResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *AccountsHandler) SubmitContact(c *fiber.Ctx) error {
	var req SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	cr, err := h.contacts.Submit(c.Context(), usecase.SubmitContactInput{
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		Project:    req.Project,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toContactRequestResponse(*cr))
}

// ListContactRequests godoc
// @Summary List contact requests
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by workflow status"
// @Success 200 {array} ContactRequestResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/contact-requests [get]
func (h *AccountsHandler) ListContactRequests(c *fiber.Ctx) error {
	requests, err := h.contacts.List(c.Context(), c.Query("status", ""))
	if err != nil {
		return writeAccountsError(c, err)
	}

	resp := make([]ContactRequestResponse, 0, len(requests))
	for _, cr := range requests {
		resp = append(resp, toContactRequestResponse(cr))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetContactRequest godoc
// @Summary Fetch one contact request
// @Tags Admin
// @Produce json
// @Param id path int true "Contact request id"
// @Success 200 {object} ContactRequestResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/contact-requests/{id} [get]
func (h *AccountsHandler) GetContactRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "contact request id must be an integer")
	}
	cr, err := h.contacts.Get(c.Context(), int64(id))
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toContactRequestResponse(*cr))
}

// UpdateContactRequest godoc
// @Summary Move a contact request through the workflow
// @Tags Admin
// @Accept json
// @Param id path int true "Contact request id"
// @Param request body UpdateContactRequest true "New status and notes"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/contact-requests/{id} [put]
func (h *AccountsHandler) UpdateContactRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "contact request id must be an integer")
	}
	var req UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be JSON")
	}

	err = h.contacts.Update(c.Context(), usecase.UpdateContactInput{
		ID:     int64(id),
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteContactRequest godoc
// @Summary Delete a contact request
// @Tags Admin
// @Param id path int true "Contact request id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/contact-requests/{id} [delete]
func (h *AccountsHandler) DeleteContactRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "contact request id must be an integer")
	}
	if err := h.contacts.Delete(c.Context(), int64(id)); err != nil {
		return writeAccountsError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetNewsletterRecipients godoc
// @Summary Emails opted in to the newsletter
// @Tags Admin
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Router /admin/newsletter/recipients [get]
func (h *AccountsHandler) GetNewsletterRecipients(c *fiber.Ctx) error {
	emails, err := h.contacts.NewsletterRecipients(c.Context())
	if err != nil {
		return writeAccountsError(c, err)
	}
	if emails == nil {
		emails = []string{}
	}
	return c.Status(http.StatusOK).JSON(emails)
}

// GetDashboard godoc
// @Summary Active services of the authenticated client
// @Tags Dashboard
// @Produce json
// @Success 200 {array} SubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Router /dashboard [get]
func (h *AccountsHandler) GetDashboard(c *fiber.Ctx) error {
	subs, err := h.subs.ClientDashboard(c.Context(), auth.UserID(c))
	if err != nil {
		return writeAccountsError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toSubscriptionResponses(subs))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: msg,
	})
}

func writeAccountsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidUser),
		errors.Is(err, usecase.ErrInvalidProduct),
		errors.Is(err, usecase.ErrInvalidSubscription),
		errors.Is(err, usecase.ErrInvalidContact):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrProductNameTaken),
		errors.Is(err, usecase.ErrAlreadySubscribed):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrSubscriptionNotFound),
		errors.Is(err, usecase.ErrContactNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		CompanyName: u.CompanyName,
		Phone:       u.Phone,
		TenantID:    u.TenantID,
		IsActive:    u.IsActive,
		WebsiteURL:  u.WebsiteURL,
		Notes:       u.Notes,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Status:      p.Status,
	}
}

func toContactRequestResponse(cr domain.ContactRequest) ContactRequestResponse {
	return ContactRequestResponse{
		ID:         cr.ID,
		Name:       cr.Name,
		Email:      cr.Email,
		Company:    cr.Company,
		Project:    cr.Project,
		Newsletter: cr.Newsletter,
		Status:     cr.Status,
		Notes:      cr.Notes,
		CreatedAt:  cr.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		resp := SubscriptionResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			ProductType: s.ProductType,
			Status:      s.Status,
			StartDate:   s.StartDate.UTC().Format("2006-01-02"),
			MonthlyCost: s.MonthlyCost,
			Notes:       s.Notes,
		}
		if s.EndDate != nil {
			resp.EndDate = s.EndDate.UTC().Format("2006-01-02")
		}
		out = append(out, resp)
	}
	return out
}
