package cmd

import (
	"gorm.io/gorm"

	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/services"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     *services.AccessPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.config.BcryptCost)
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterEmployeeCommandHandler() commands.RegisterEmployeeCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterEmployeeCommandHandler(f, c.policy, c.config.BcryptCost)
}

func (c *CompositionRoot) CreateSetAccountStatusCommandHandler() commands.SetAccountStatusCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAccountStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateAccountContactCommandHandler() commands.UpdateAccountContactCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAccountContactCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingAccountUoWFactory = FuncBookingAccountUoWFactory(func() commands.BookingAccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.policy, booking.NewFlatDeclaredValuePolicy())
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateOverrideBookingStatusCommandHandler() commands.OverrideBookingStatusCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideBookingStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAssignEmployeeCommandHandler() commands.AssignEmployeeCommandHandler {
	var f commands.BookingAccountUoWFactory = FuncBookingAccountUoWFactory(func() commands.BookingAccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignEmployeeCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() commands.MarkInvoicePaidCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkInvoicePaidCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateOpenTicketCommandHandler() commands.OpenTicketCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenTicketCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCloseTicketCommandHandler() commands.CloseTicketCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseTicketCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetCustomerBookingsQueryHandler() queries.GetCustomerBookingsQueryHandler {
	return queries.NewGetCustomerBookingsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetAssignedShipmentsQueryHandler() queries.GetAssignedShipmentsQueryHandler {
	return queries.NewGetAssignedShipmentsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetAllBookingsQueryHandler() queries.GetAllBookingsQueryHandler {
	return queries.NewGetAllBookingsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetCustomerInvoicesQueryHandler() queries.GetCustomerInvoicesQueryHandler {
	return queries.NewGetCustomerInvoicesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetInvoiceDocumentQueryHandler() queries.GetInvoiceDocumentQueryHandler {
	return queries.NewGetInvoiceDocumentQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListAccountsQueryHandler() queries.ListAccountsQueryHandler {
	return queries.NewListAccountsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListTicketsQueryHandler() queries.ListTicketsQueryHandler {
	return queries.NewListTicketsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateExportReportQueryHandler() queries.ExportReportQueryHandler {
	return queries.NewExportReportQueryHandler(c.gormDB, c.policy)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncBookingAccountUoWFactory func() commands.BookingAccountUoW

func (f FuncBookingAccountUoWFactory) Create() commands.BookingAccountUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}
