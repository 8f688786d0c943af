package queries

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrExportReportQueryIsNotConstructed = errors.New(
	"ExportReportQuery must be created via NewExportReportQuery constructor",
)

// ReportKind selects which report projection to export.
type ReportKind string

const (
	// ReportFinancial lists bookings with their charge and payment state.
	ReportFinancial ReportKind = "financial"

	// ReportShipment lists bookings with their parties and movement state.
	ReportShipment ReportKind = "shipment"

	// ReportFull combines the financial and shipment columns with
	// customer and address detail.
	ReportFull ReportKind = "full"
)

// ReportKindFromString parses a report kind name.
func ReportKindFromString(s string) (ReportKind, error) {
	switch ReportKind(s) {
	case ReportFinancial, ReportShipment, ReportFull:
		return ReportKind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("reportKind",
			fmt.Errorf("%q is not a valid report kind", s))
	}
}

// ExportReportQuery retrieves one report projection over a booking date
// range. Administrator only; the HTTP layer renders the rows as CSV.
type ExportReportQuery struct {
	kind ReportKind
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewExportReportQuery creates a report query over [from, to).
func NewExportReportQuery(kind ReportKind, from, to time.Time) (ExportReportQuery, error) {
	if _, err := ReportKindFromString(string(kind)); err != nil {
		return ExportReportQuery{}, err
	}
	if from.IsZero() || to.IsZero() {
		return ExportReportQuery{}, errs.NewValueIsRequiredError("dateRange")
	}
	if !to.After(from) {
		return ExportReportQuery{}, errs.NewValueIsInvalidErrorWithCause("dateRange",
			fmt.Errorf("to %s is not after from %s", to, from))
	}

	return ExportReportQuery{
		kind:  kind,
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportReportQuery) Validate() error {
	return q.guard.Validate(ErrExportReportQueryIsNotConstructed)
}

// Kind returns the report projection to export.
func (q ExportReportQuery) Kind() ReportKind {
	return q.kind
}

// From returns the inclusive start of the booking date range.
func (q ExportReportQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the booking date range.
func (q ExportReportQuery) To() time.Time {
	return q.to
}

// ReportResponse is a rendered report: a header row plus data rows, ready
// for CSV encoding.
type ReportResponse struct {
	Kind   ReportKind
	Header []string
	Rows   [][]string
}
