package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
)

type registerAccountRequest struct {
	Handle   string `json:"handle"`
	Contact  string `json:"contact"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type registerAccountResponse struct {
	AccountID string `json:"accountId"`
}

// RegisterAccount handles POST /api/v1/accounts - customer self-registration.
func (s *Server) RegisterAccount(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, kernel.NewUUID(),
		req.Handle, req.Contact, req.FullName, req.Password, req.Phone, req.Address,
	)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.RegisterAccount.Handle(c.Request().Context(), cmd); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, registerAccountResponse{AccountID: accountID.String()})
}

type loginRequest struct {
	Handle   string `json:"handle"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a
// bearer token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewAuthenticateCommand(req.Handle, role, req.Password)
	if err != nil {
		return renderError(c, err)
	}

	principal, err := s.handlers.Authenticate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return renderError(c, err)
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		AccountID: principal.AccountID.String(),
		Role:      principal.Role.String(),
	})
}

type updateContactRequest struct {
	FullName string `json:"fullName"`
	Contact  string `json:"contact"`
}

// UpdateContact handles PUT /api/v1/accounts/contact - updates the caller's
// own name and contact address.
func (s *Server) UpdateContact(c echo.Context) error {
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateAccountContactCommand(req.FullName, req.Contact)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.UpdateContact.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type registerEmployeeRequest struct {
	Handle         string    `json:"handle"`
	Contact        string    `json:"contact"`
	FullName       string    `json:"fullName"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Department     string    `json:"department"`
	Position       string    `json:"position"`
	EmploymentType string    `json:"employmentType"`
	HireDate       time.Time `json:"hireDate"`
	PhotoRef       string    `json:"photoRef"`
}

type registerEmployeeResponse struct {
	AccountID    string `json:"accountId"`
	EmployeeCode string `json:"employeeCode"`
	TempPassword string `json:"tempPassword"`
}

// RegisterEmployee handles POST /api/v1/admin/employees - onboards a new
// employee and returns the generated code and one-time password.
func (s *Server) RegisterEmployee(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterEmployeeCommand(
		accountID, kernel.NewUUID(),
		req.Handle, req.Contact, req.FullName, req.Phone, req.Address,
		req.Department, req.Position, req.EmploymentType,
		req.HireDate, req.PhotoRef,
	)
	if err != nil {
		return renderError(c, err)
	}

	result, err := s.handlers.RegisterEmployee.Handle(c.Request().Context(), principalFrom(c), cmd)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, registerEmployeeResponse{
		AccountID:    accountID.String(),
		EmployeeCode: result.EmployeeCode,
		TempPassword: result.TempPassword,
	})
}

type setAccountStatusRequest struct {
	Status string `json:"status"`
}

// SetAccountStatus handles PUT /api/v1/admin/accounts/:accountID/status.
func (s *Server) SetAccountStatus(c echo.Context) error {
	accountID, err := kernel.UUIDFromString(c.Param("accountID"))
	if err != nil {
		return renderError(c, err)
	}

	var req setAccountStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := account.StatusFromString(req.Status)
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewSetAccountStatusCommand(accountID, status)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.SetAccountStatus.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type accountSummary struct {
	AccountID    string `json:"accountId"`
	Handle       string `json:"handle"`
	Contact      string `json:"contact"`
	FullName     string `json:"fullName"`
	Status       string `json:"status"`
	EmployeeCode string `json:"employeeCode,omitempty"`
}

// ListAccounts handles GET /api/v1/admin/accounts?role= - lists accounts of
// one role.
func (s *Server) ListAccounts(c echo.Context) error {
	role, err := account.RoleFromString(c.QueryParam("role"))
	if err != nil {
		return renderError(c, err)
	}

	query, err := queries.NewListAccountsQuery(role)
	if err != nil {
		return renderError(c, err)
	}

	accounts, err := s.handlers.ListAccounts.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	response := make([]accountSummary, len(accounts))
	for i, a := range accounts {
		response[i] = accountSummary{
			AccountID:    a.AccountID.String(),
			Handle:       a.Handle,
			Contact:      a.Contact,
			FullName:     a.FullName,
			Status:       a.Status,
			EmployeeCode: a.EmployeeCode,
		}
	}

	return c.JSON(http.StatusOK, response)
}
