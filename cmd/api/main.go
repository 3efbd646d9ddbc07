package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	appanalytics "github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/hotelapi"
	infrapdf "github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hotel-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/hotel-dashboard-api/pkg/config"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

// sources los cuatro puertos de lectura que consume el dashboard.
type sources struct {
	hotels   repository.HotelRepository
	rooms    repository.RoomRepository
	guests   repository.GuestRepository
	bookings repository.BookingRepository
	forward  httpRouter.TokenForwarder
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.App.DataSource).
		Msg("iniciando aplicación")

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del dashboard")
	}

	ctx := context.Background()
	src, err := buildSources(ctx, cfg, loc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("fuente de datos")
	}
	defer src.close()

	dashboardUC := appanalytics.NewDashboardUseCase(
		src.hotels, src.rooms, src.guests, src.bookings,
		appanalytics.WithLocation(loc),
		appanalytics.WithTopHotels(cfg.Dashboard.TopHotels),
		appanalytics.WithLogger(log.Named("dashboard")),
		appanalytics.WithPDFGenerator(infrapdf.NewMarotoPDFGenerator(language.LatinAmericanSpanish)),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "data_source": cfg.App.DataSource})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:  dashboardUC,
		ForwardToken: src.forward,
		JWTSecret:    cfg.JWT.Secret,
		Logger:       log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildSources arma los repositorios según DATA_SOURCE.
func buildSources(ctx context.Context, cfg *config.Config, loc *time.Location, log *logger.Logger) (*sources, error) {
	switch cfg.App.DataSource {
	case config.DataSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("dashboard: leyendo desde PostgreSQL")
		return &sources{
			hotels:   postgres.NewHotelRepository(pool),
			rooms:    postgres.NewRoomRepository(pool),
			guests:   postgres.NewGuestRepository(pool),
			bookings: postgres.NewBookingRepository(pool),
			close:    pool.Close,
		}, nil

	default:
		client := hotelapi.NewClient(cfg.HotelAPI,
			hotelapi.WithLocation(loc),
			hotelapi.WithLogger(log.Named("hotelapi")),
		)
		log.Info().Str("base_url", cfg.HotelAPI.BaseURL).Msg("dashboard: leyendo desde la API de gestión")
		return &sources{
			hotels:   hotelapi.NewHotelRepository(client),
			rooms:    hotelapi.NewRoomRepository(client),
			guests:   hotelapi.NewGuestRepository(client),
			bookings: hotelapi.NewBookingRepository(client),
			forward:  hotelapi.WithBearerToken,
			close:    func() {},
		}, nil
	}
}
