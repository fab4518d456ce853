package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-pricing/internal/handler/api"
	"storefront-pricing/internal/handler/middleware"
	"storefront-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart       *api.CartHandler
	Membership *api.MembershipHandler
}

type Middlewares struct {
	Auth   *middleware.AuthMiddleware
	Guest  *middleware.GuestCartMiddleware
	Logger *middleware.Logger
}

func NewHandlers(cart *api.CartHandler, membership *api.MembershipHandler) Handlers {
	return Handlers{Cart: cart, Membership: membership}
}

func NewMiddlewares(auth *middleware.AuthMiddleware, guest *middleware.GuestCartMiddleware, logger *middleware.Logger) Middlewares {
	return Middlewares{Auth: auth, Guest: guest, Logger: logger}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		cart.Use(mw.Auth.OptionalAuth(), mw.Guest.AssignGuest())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:productId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/merge", Handler: h.Cart.MergeGuestCart, Mw: []gin.HandlerFunc{mw.Auth.RequireAuth()}},
			})
		}

		membership := apiGroup.Group("/membership")
		membership.Use(mw.Auth.OptionalAuth(), mw.Guest.AssignGuest())
		{
			addRoutes(membership, []route{
				{Method: http.MethodGet, Path: "/status", Handler: h.Membership.GetStatus},
				{Method: http.MethodPost, Path: "/eligibility", Handler: h.Membership.PreviewEligibility},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
