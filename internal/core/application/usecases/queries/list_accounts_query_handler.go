package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// ListAccountsQueryHandler lists accounts by role for administrators.
type ListAccountsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewListAccountsQueryHandler creates a handler for account listings.
func NewListAccountsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing ordered by handle.
func (h ListAccountsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query ListAccountsQuery,
) ([]AccountSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpListAccounts); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.handle,
			a.contact,
			a.full_name,
			a.status,
			ep.code
		FROM accounts a
		LEFT JOIN employee_profiles ep ON ep.account_id = a.id
		WHERE a.role = ?
		ORDER BY a.handle
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]AccountSummaryResponse, 0)
	for rows.Next() {
		var summary AccountSummaryResponse
		var id uuid.UUID
		var code sql.NullString

		err = rows.Scan(&id, &summary.Handle, &summary.Contact, &summary.FullName, &summary.Status, &code)
		if err != nil {
			return nil, err
		}

		if summary.AccountID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.EmployeeCode = code.String
		accounts = append(accounts, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
