package app

import (
	"errors"
	"time"

	"astroleap/internal/config"
	"astroleap/internal/handlers"
	"astroleap/internal/middleware"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Banner is the plain-text answer of GET /.
const Banner = "AstroLeapApi connected 🚀"

// Deps are the collaborators the app is built from. Mailer, Publisher and
// LimiterStorage are optional.
type Deps struct {
	DB             *gorm.DB
	Gateway        services.Gateway
	Mailer         services.Mailer
	Publisher      services.EventPublisher
	LimiterStorage fiber.Storage
}

// New wires repositories, services and handlers into a Fiber app.
func New(cfg config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AstroLeapApi",
		UnescapePath: true,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
			Storage:    deps.LimiterStorage,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests",
				})
			},
		}))
	}
	app.Use(middleware.RequestFilter())

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	unlocksRepo := repositories.NewGORMUnlocksRepository(deps.DB)
	shopRepo := repositories.NewGORMShopRepository(deps.DB)
	currentShopRepo := repositories.NewGORMCurrentShopRepository(deps.DB)
	userShopRepo := repositories.NewGORMUserShopRepository(deps.DB)
	competitiveRepo := repositories.NewGORMCompetitiveRepository(deps.DB)
	roomRepo := repositories.NewGORMRoomRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)

	// --- Services ---
	userShopService := services.NewUserShopService(userShopRepo)
	accountService := services.NewAccountService(userRepo, userShopService)
	var notificationService *services.NotificationService
	if deps.Mailer != nil {
		notificationService = services.NewNotificationService(deps.Mailer)
	}
	paymentService := services.NewPaymentService(orderRepo, deps.Gateway, notificationService, deps.Publisher)

	// --- Handlers ---
	handlers.NewAccountHandler(accountService).RegisterRoutes(app)
	handlers.NewUnlocksHandler(services.NewUnlocksService(unlocksRepo), accountService).RegisterRoutes(app)
	handlers.NewShopHandler(
		services.NewShopService(shopRepo),
		services.NewCurrentShopService(currentShopRepo),
		userShopService,
	).RegisterRoutes(app)
	handlers.NewCompetitiveHandler(services.NewCompetitiveService(competitiveRepo)).RegisterRoutes(app)
	handlers.NewRoomHandler(services.NewRoomService(roomRepo)).RegisterRoutes(app)
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(app)
	if notificationService != nil {
		handlers.NewEmailHandler(notificationService).RegisterRoutes(app)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Banner)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
