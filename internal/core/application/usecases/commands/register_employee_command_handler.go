package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/services"
)

const (
	employeeCodePrefix = "EMP"
	tempPasswordLength = 10
	tempPasswordChars  = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

// RegisterEmployeeResult carries the credentials produced during employee
// onboarding. The temporary password is returned exactly once and is not
// stored anywhere in plain form.
type RegisterEmployeeResult struct {
	EmployeeCode string
	TempPassword string
}

// RegisterEmployeeCommandHandler handles administrator-driven employee
// onboarding. Allocates a sequential employee code and a random temporary
// password, and persists the account with its profile in one transaction.
type RegisterEmployeeCommandHandler struct {
	uowFactory AccountUoWFactory
	policy     *services.AccessPolicy
	bcryptCost int
}

// NewRegisterEmployeeCommandHandler creates a handler for employee onboarding.
func NewRegisterEmployeeCommandHandler(
	uowFactory AccountUoWFactory, policy *services.AccessPolicy, bcryptCost int,
) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		bcryptCost: bcryptCost,
	}
}

// Handle processes the onboarding command. Only administrators may onboard
// employees. The employee code is allocated inside the transaction so two
// concurrent onboardings cannot produce the same code.
func (h *RegisterEmployeeCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd RegisterEmployeeCommand,
) (RegisterEmployeeResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterEmployeeResult{}, err
	}
	if err := h.policy.Authorize(principal, services.OpRegisterEmployee); err != nil {
		return RegisterEmployeeResult{}, err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return RegisterEmployeeResult{}, err
	}

	credential, err := account.HashCredential(tempPassword, h.bcryptCost)
	if err != nil {
		return RegisterEmployeeResult{}, err
	}

	acc, err := account.NewAccount(
		cmd.AccountID(), cmd.Handle(), cmd.Contact(), cmd.FullName(), credential, account.RoleEmployee)
	if err != nil {
		return RegisterEmployeeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterEmployeeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	number, err := accountRepo.NextEmployeeNumber(ctx)
	if err != nil {
		return RegisterEmployeeResult{}, err
	}
	code := fmt.Sprintf("%s%03d", employeeCodePrefix, number)

	profile, err := account.NewEmployeeProfile(
		cmd.ProfileID(), cmd.AccountID(),
		code, cmd.Phone(), cmd.Address(), cmd.Department(), cmd.Position(), cmd.EmploymentType(),
		cmd.HireDate(), cmd.PhotoRef())
	if err != nil {
		return RegisterEmployeeResult{}, err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return RegisterEmployeeResult{}, err
	}
	if err = accountRepo.AddEmployeeProfile(ctx, profile); err != nil {
		return RegisterEmployeeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterEmployeeResult{}, err
	}

	return RegisterEmployeeResult{EmployeeCode: code, TempPassword: tempPassword}, nil
}

func generateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)
	maximum := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, maximum)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordChars[n.Int64()]
	}
	return string(buf), nil
}
