package handlers

import (
	"gasmeter/internal/logger"
	"gasmeter/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	limiter  *ipRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		log:      log,
		limiter:  newIPRateLimiter(apiRateLimit, apiRateBurst),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket stream of the latest stored calculation (same port)
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.rateLimitMiddleware, h.userIdMiddleware)
	{
		h.registerGasRoutes(api)
		h.registerReportRoutes(api)
		h.registerToolRoutes(api)
	}
}

func (h *Handler) registerGasRoutes(api *gin.RouterGroup) {
	gas := api.Group("/gas")
	{
		// Body example: {"composition":{"methane":94.5,...},"pressure_barg":20,"temperature_degc":25,"strategy":"cubic"}
		gas.POST("/report", h.generateReport)
		gas.POST("/zfactor", h.evaluateZ)
		gas.POST("/batch", h.batchImport)
	}
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.GET("/", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/pdf", h.reportPDF)
	}
}

func (h *Handler) registerToolRoutes(api *gin.RouterGroup) {
	tools := api.Group("/tools")
	{
		tools.POST("/convert", h.convertUnits)
		tools.POST("/flow", h.pipeFlow)
		tools.POST("/pressure-drop", h.pressureDrop)
	}
}
