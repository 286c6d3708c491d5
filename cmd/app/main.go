package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"shiprelay/cmd"
	httpadapter "shiprelay/internal/adapters/in/http"
	"shiprelay/internal/adapters/out/postgres/orderrepo"
	"shiprelay/internal/adapters/out/postgres/principalrepo"
	"shiprelay/internal/adapters/out/postgres/shipmentrepo"
	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/principal"
	"shiprelay/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err := seedPrincipal(&app, configs); err != nil {
		log.Fatalf("Error seeding login principal: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		ShiprocketBaseURL:         goDotEnvVariable("SHIPROCKET_BASE_URL"),
		ShiprocketEmail:           goDotEnvVariable("SHIPROCKET_EMAIL"),
		ShiprocketPassword:        goDotEnvVariable("SHIPROCKET_PASSWORD"),
		ShiprocketTokenTTL:        goDotEnvVariable("SHIPROCKET_TOKEN_TTL"),
		JWTSecret:                 goDotEnvVariable("JWT_SECRET"),
		JWTTTL:                    goDotEnvVariable("JWT_TTL"),
		ReconciliationGracePeriod: goDotEnvVariable("RECONCILIATION_GRACE_PERIOD"),
		ReconciliationSchedule:    goDotEnvVariable("RECONCILIATION_SCHEDULE"),
		SeedAdminUsername:         goDotEnvVariable("SEED_ADMIN_USERNAME"),
		SeedAdminPassword:         goDotEnvVariable("SEED_ADMIN_PASSWORD"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&principalrepo.PrincipalDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// seedPrincipal ensures at least one login exists so the API is usable on a
// fresh database. Existing principals are left untouched.
func seedPrincipal(app *cmd.CompositionRoot, configs cmd.Config) error {
	if configs.SeedAdminUsername == "" || configs.SeedAdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	repo := app.PrincipalRepository()

	_, err := repo.GetByUsername(ctx, configs.SeedAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	hash, err := app.PasswordHasher().Hash(configs.SeedAdminPassword)
	if err != nil {
		return err
	}

	seeded, err := principal.NewPrincipal(kernel.NewUUID(), configs.SeedAdminUsername, hash)
	if err != nil {
		return err
	}

	return repo.Add(ctx, seeded)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateLoginCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignAWBCommandHandler(),
		app.CreateGenerateLabelCommandHandler(),
		app.CreateSchedulePickupCommandHandler(),
		app.CreateTrackShipmentCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateCheckServiceabilityQueryHandler(),
	)
	server.RegisterRoutes(e, app.TokenSigner())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
