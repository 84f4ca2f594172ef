package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/metrics"
	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// AccountHandler handles both account-creation paths.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type profileRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type createAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=EMPLOYEE RESELLER_CUSTOMER"`
	profileRequest
}

// signupRequest deliberately has no role field: whatever the caller sends is
// ignored and the account is created as a retail customer.
type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	profileRequest
}

type createdAccountResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

func (p profileRequest) toInput() ports.ProfileInput {
	return ports.ProfileInput{
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
		Country: p.Country,
	}
}

// Create provisions an employee or reseller account on behalf of an admin.
//
// @Summary      Create an account (admin)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  createdAccountResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	// The admin route is already gated by RBAC middleware, but the check is
	// repeated here so the handler stays safe if composed with a different
	// boundary.
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok || principal.Role != domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin access required")
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.Role(req.Role),
		Profile:   req.toInput(),
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(user.Role), "admin").Inc()

	return c.JSON(http.StatusCreated, createdAccountResponse{
		Message: "Account created successfully",
		User:    user,
	})
}

// Profile returns the record behind the calling session.
//
// @Summary      Get own profile
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	user, err := h.accounts.GetProfile(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SignUp registers a retail customer.
//
// @Summary      Self-service signup
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  createdAccountResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   req.toInput(),
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(user.Role), "signup").Inc()

	return c.JSON(http.StatusCreated, createdAccountResponse{
		Message: "User created successfully",
		User:    user,
	})
}
