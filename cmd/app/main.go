package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cargo/cmd"
	httpadapter "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/postgres/accountrepo"
	"cargo/internal/adapters/out/postgres/bookingrepo"
	"cargo/internal/adapters/out/postgres/invoicerepo"
	"cargo/internal/adapters/out/postgres/ticketrepo"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetOverdueShipmentsQueryHandler(),
		configs.OverdueSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		TokenTTL:        durationEnv("TOKEN_TTL", 24*time.Hour),
		BcryptCost:      intEnv("BCRYPT_COST", account.DefaultCredentialCost),
		OverdueSchedule: envOrDefault("OVERDUE_SCHEDULE", "0 * * * *"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&accountrepo.CustomerProfileDTO{},
		&accountrepo.EmployeeProfileDTO{},
		&bookingrepo.BookingDTO{},
		&bookingrepo.TrackingEventDTO{},
		&invoicerepo.InvoiceDTO{},
		&ticketrepo.TicketDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	handlers := httpadapter.Handlers{
		RegisterAccount:  app.CreateRegisterAccountCommandHandler(),
		Authenticate:     app.CreateAuthenticateCommandHandler(),
		RegisterEmployee: app.CreateRegisterEmployeeCommandHandler(),
		SetAccountStatus: app.CreateSetAccountStatusCommandHandler(),
		UpdateContact:    app.CreateUpdateAccountContactCommandHandler(),
		CreateBooking:    app.CreateCreateBookingCommandHandler(),
		AppendEvent:      app.CreateAppendTrackingEventCommandHandler(),
		AssignEmployee:   app.CreateAssignEmployeeCommandHandler(),
		OverrideStatus:   app.CreateOverrideBookingStatusCommandHandler(),
		CreateInvoice:    app.CreateCreateInvoiceCommandHandler(),
		MarkInvoicePaid:  app.CreateMarkInvoicePaidCommandHandler(),
		OpenTicket:       app.CreateOpenTicketCommandHandler(),
		CloseTicket:      app.CreateCloseTicketCommandHandler(),

		TrackShipment:     app.CreateTrackShipmentQueryHandler(),
		CustomerBookings:  app.CreateGetCustomerBookingsQueryHandler(),
		AssignedShipments: app.CreateGetAssignedShipmentsQueryHandler(),
		AllBookings:       app.CreateGetAllBookingsQueryHandler(),
		CustomerInvoices:  app.CreateGetCustomerInvoicesQueryHandler(),
		InvoiceDocument:   app.CreateGetInvoiceDocumentQueryHandler(),
		ListAccounts:      app.CreateListAccountsQueryHandler(),
		ListTickets:       app.CreateListTicketsQueryHandler(),
		DashboardStats:    app.CreateGetDashboardStatsQueryHandler(),
		OverdueShipments:  app.CreateGetOverdueShipmentsQueryHandler(),
		ExportReport:      app.CreateExportReportQueryHandler(),
	}

	tokens := httpadapter.NewTokenIssuer([]byte(configs.JWTSecret), configs.TokenTTL)
	server := httpadapter.NewServer(handlers, tokens)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
