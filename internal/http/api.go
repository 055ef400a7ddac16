package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-api/internal/auth"
	"catalog-api/internal/service"
)

// TokenVerifier validates bearer tokens presented to protected routes.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Pinger reports store availability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Config carries the collaborators of Handler.
type Config struct {
	Users      service.UserService
	Categories service.CategoryService
	Products   service.ProductService
	Tokens     TokenVerifier
	// RequireToken guards mutating category and product routes with bearer auth.
	RequireToken bool
	Store        Pinger
	Logger       *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users        service.UserService
	categories   service.CategoryService
	products     service.ProductService
	tokens       TokenVerifier
	requireToken bool
	store        Pinger
	logger       *logrus.Logger
}

func NewHandler(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Handler{
		users:        cfg.Users,
		categories:   cfg.Categories,
		products:     cfg.Products,
		tokens:       cfg.Tokens,
		requireToken: cfg.RequireToken,
		store:        cfg.Store,
		logger:       cfg.Logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), loggingMiddleware(h.logger), corsMiddleware())

	router.GET("/health", h.health)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", h.register)
		authRoutes.POST("/login", h.login)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.POST("", h.protect(h.createCategory)...)
		categories.PUT("/:id", h.protect(h.updateCategory)...)
		categories.DELETE("/:id", h.protect(h.deleteCategory)...)
	}

	products := router.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", h.protect(h.createProduct)...)
		products.PUT("/:id", h.protect(h.updateProduct)...)
		products.DELETE("/:id", h.protect(h.deleteProduct)...)
	}
}

func (h *Handler) protect(handler gin.HandlerFunc) []gin.HandlerFunc {
	if !h.requireToken {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{bearerAuthMiddleware(h.tokens), handler}
}

func (h *Handler) health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.PingContext(c.Request.Context()); err != nil {
			h.logger.WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID reads the :id path parameter; only positive integers are accepted.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
