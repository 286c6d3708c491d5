package cmd

import (
	"log/slog"
	"time"

	"shiprelay/internal/adapters/out/postgres"
	"shiprelay/internal/adapters/out/postgres/principalrepo"
	"shiprelay/internal/adapters/out/shiprocket"
	"shiprelay/internal/core/application/usecases/commands"
	"shiprelay/internal/core/application/usecases/queries"
	"shiprelay/internal/core/ports"
	"shiprelay/internal/jobs"
	"shiprelay/internal/pkg/crypto"

	"gorm.io/gorm"
)

const (
	defaultTokenTTL               = 9 * 24 * time.Hour
	defaultJWTTTL                 = 24 * time.Hour
	defaultReconciliationGrace    = 5 * time.Minute
	defaultReconciliationSchedule = "* * * * *"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *shiprocket.Client
	hasher     *crypto.Argon2Hasher
	signer     *crypto.JWTSigner
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway: shiprocket.NewClient(
			configs.ShiprocketBaseURL,
			configs.ShiprocketEmail,
			configs.ShiprocketPassword,
			durationOrDefault(configs.ShiprocketTokenTTL, defaultTokenTTL),
		),
		hasher: crypto.NewArgon2Hasher(crypto.DefaultArgon2Params),
		signer: crypto.NewJWTSigner(
			[]byte(configs.JWTSecret),
			durationOrDefault(configs.JWTTTL, defaultJWTTTL),
		),
		logger: logger,
	}
}

func (c *CompositionRoot) TokenSigner() ports.TokenSigner {
	return c.signer
}

func (c *CompositionRoot) PasswordHasher() ports.PasswordHasher {
	return c.hasher
}

func (c *CompositionRoot) PrincipalRepository() ports.PrincipalRepository {
	return principalrepo.NewGormPrincipalRepository(c.gormDB)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.PrincipalRepository(), c.hasher, c.signer, c.gateway)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateAssignAWBCommandHandler() commands.AssignAWBCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAWBCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGenerateLabelCommandHandler() commands.GenerateLabelCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateLabelCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSchedulePickupCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateTrackShipmentCommandHandler() commands.TrackShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTrackShipmentCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateSubmitPendingOrdersCommandHandler() commands.SubmitPendingOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPendingOrdersCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckServiceabilityQueryHandler() queries.CheckServiceabilityQueryHandler {
	return queries.NewCheckServiceabilityQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	schedule := c.configs.ReconciliationSchedule
	if schedule == "" {
		schedule = defaultReconciliationSchedule
	}

	return jobs.NewJobManager(
		c.CreateSubmitPendingOrdersCommandHandler(),
		durationOrDefault(c.configs.ReconciliationGracePeriod, defaultReconciliationGrace),
		schedule,
		c.logger,
	)
}

func durationOrDefault(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
