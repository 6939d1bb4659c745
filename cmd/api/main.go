package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-rental/internal/common/api"
	"go-rental/internal/config"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/charge"
	"go-rental/internal/features/customer"
	"go-rental/internal/features/document"
	"go-rental/internal/features/inspection"
	"go-rental/internal/features/insurance"
	"go-rental/internal/features/intervention"
	"go-rental/internal/features/stats"
	"go-rental/internal/features/system"
	"go-rental/internal/features/traite"
	"go-rental/internal/features/vehicle"
	"go-rental/internal/logger"
	"go-rental/internal/middleware"

	_ "go-rental/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, zapLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             32 << 20, // document uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	app.Use(middleware.RequestLogger(zapLogger))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, docRepo document.DocumentRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := docRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure document indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// @title           Rental Admin API
// @version         1.0
// @description     REST backend for the vehicle rental administrative console.

// @host            localhost:5000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			document.NewDocumentRepository,
			audit.NewAuditRepository,
			customer.NewCustomerRepository,
			vehicle.NewVehicleRepository,
			insurance.NewInsuranceRepository,
			inspection.NewInspectionRepository,
			intervention.NewInterventionRepository,
			traite.NewTraiteRepository,
			charge.NewChargeRepository,
			stats.NewStatsRepository,

			// Initialize Service
			document.NewDocumentService,
			audit.NewAuditService,
			customer.NewCustomerService,
			vehicle.NewVehicleService,
			insurance.NewInsuranceService,
			inspection.NewInspectionService,
			intervention.NewInterventionService,
			traite.NewTraiteService,
			charge.NewChargeService,
			stats.NewStatsService,

			// Initialize Controller
			document.NewDocumentController,
			audit.NewAuditController,
			customer.NewCustomerController,
			vehicle.NewVehicleController,
			insurance.NewInsuranceController,
			inspection.NewInspectionController,
			intervention.NewInterventionController,
			traite.NewTraiteController,
			charge.NewChargeController,
			stats.NewStatsController,

			// Initialize API Routes
			AsRoute(document.NewDocumentApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(customer.NewCustomerApi),
			AsRoute(vehicle.NewVehicleApi),
			AsRoute(insurance.NewInsuranceApi),
			AsRoute(inspection.NewInspectionApi),
			AsRoute(intervention.NewInterventionApi),
			AsRoute(traite.NewTraiteApi),
			AsRoute(charge.NewChargeApi),
			AsRoute(stats.NewStatsApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
		),
	)

	app.Run()
}
