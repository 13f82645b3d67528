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

	"github.com/Teamwawa12/ProyectoBus/internal/application/analytics"
	"github.com/Teamwawa12/ProyectoBus/internal/application/auth"
	"github.com/Teamwawa12/ProyectoBus/internal/application/catalogo"
	"github.com/Teamwawa12/ProyectoBus/internal/application/venta"
	infrapdf "github.com/Teamwawa12/ProyectoBus/internal/infrastructure/pdf"
	"github.com/Teamwawa12/ProyectoBus/internal/infrastructure/postgres"
	"github.com/Teamwawa12/ProyectoBus/internal/infrastructure/reniec"
	httpRouter "github.com/Teamwawa12/ProyectoBus/internal/interfaces/http"
	"github.com/Teamwawa12/ProyectoBus/pkg/config"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	rutaRepo := postgres.NewRutaRepository(pool)
	busRepo := postgres.NewBusRepository(pool)
	viajeRepo := postgres.NewViajeRepository(pool)
	pasajeRepo := postgres.NewPasajeRepository(pool)
	estadisticasRepo := postgres.NewEstadisticasRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, clienteRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogoUC := catalogo.NewCatalogoUseCase(rutaRepo, viajeRepo, busRepo, pasajeRepo)
	comprarUC := venta.NewComprarPasajesUseCase(txRunner, pasajeRepo)
	dashboardUC := analytics.NewDashboardUseCase(estadisticasRepo)

	boletoGenerator := infrapdf.NewMarotoBoletoGenerator()
	boletoUC := venta.NewBoletoPDFUseCase(pasajeRepo, boletoGenerator)

	reniecClient := reniec.NewClient(cfg.Reniec, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NORTEEXPRESO API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogoUC:   catalogoUC,
		ComprarUC:    comprarUC,
		BoletoUC:     boletoUC,
		DashboardUC:  dashboardUC,
		ReniecClient: reniecClient,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
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
