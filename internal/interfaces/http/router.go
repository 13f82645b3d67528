package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/analytics"
	"github.com/Teamwawa12/ProyectoBus/internal/application/auth"
	"github.com/Teamwawa12/ProyectoBus/internal/application/catalogo"
	"github.com/Teamwawa12/ProyectoBus/internal/application/venta"
	"github.com/Teamwawa12/ProyectoBus/internal/infrastructure/reniec"
	"github.com/Teamwawa12/ProyectoBus/pkg/jwt"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogoUC   *catalogo.CatalogoUseCase
	ComprarUC    *venta.ComprarPasajesUseCase
	BoletoUC     *venta.BoletoPDFUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReniecClient *reniec.Client
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register-cliente", authHandler.RegisterCliente)
	authGroup.Post("/register-admin", authHandler.RegisterAdmin)

	// Catálogo (público)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.Log)
	api.Get("/rutas", catalogoHandler.ListarRutas)
	api.Get("/viajes/buscar", catalogoHandler.BuscarViajes)
	api.Get("/viajes/:viajeId/asientos", catalogoHandler.AsientosOcupados)

	// RENIEC (público; lo consume el formulario de compra)
	reniecHandler := NewReniecHandler(deps.ReniecClient, deps.Log)
	api.Get("/reniec/dni/:dni", reniecHandler.ConsultarDNI)

	// Venta (público: el flujo invitado compra sin cuenta)
	ventaHandler := NewVentaHandler(deps.ComprarUC, deps.BoletoUC, deps.Log)
	api.Post("/pasajes/compra-completa", ventaHandler.CompraCompleta)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/pasajes/:codigo/pdf", ventaHandler.DescargarBoleto)

	// Solo staff administrativo
	admin := protected.Group("/", RequireType(jwt.TypeAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	admin.Get("/dashboard/estadisticas", dashboardHandler.Estadisticas)

	adminHandler := NewAdminHandler(deps.CatalogoUC, deps.Log)
	admin.Get("/admin/viajes", adminHandler.ListarViajes)
	admin.Get("/admin/buses", adminHandler.ListarBuses)
}
