package server

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/controller"
	"ctchen222/studio-backend/internal/api/middleware"
	"ctchen222/studio-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the route handlers the server mounts.
type Controllers struct {
	User    *controller.UserController
	Card    *controller.CardController
	Result  *controller.ResultController
	Section *controller.SectionController
	Image   *controller.ImageController
}

// Server owns the Gin engine and the route table. List endpoints are
// public; every mutation sits behind the token middleware.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine and registers all routes.
func NewServer(cfg *config.Config, ctrl Controllers) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), cors())

	engine.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.RequireAuth([]byte(cfg.SecretKey))

	api := engine.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", ctrl.User.Register)
			authRoutes.POST("/login", ctrl.User.Login)
		}

		cards := api.Group("/cards")
		{
			cards.GET("", ctrl.Card.List)
			cards.POST("", requireAuth, ctrl.Card.Create)
			cards.PUT("/:id", requireAuth, ctrl.Card.Update)
			cards.DELETE("/:id", requireAuth, ctrl.Card.Delete)
		}

		results := api.Group("/results")
		{
			results.GET("", ctrl.Result.List)
			results.POST("", requireAuth, ctrl.Result.Create)
			results.DELETE("/:id", requireAuth, ctrl.Result.Delete)
		}

		sections := api.Group("/sections")
		{
			sections.GET("", ctrl.Section.List)
			sections.POST("", requireAuth, ctrl.Section.Create)
			sections.PUT("/:id", requireAuth, ctrl.Section.Update)
			sections.DELETE("/:id", requireAuth, ctrl.Section.Delete)
		}

		images := api.Group("/images")
		{
			images.GET("", ctrl.Image.List)
			images.POST("/upload", requireAuth, ctrl.Image.Upload)
			images.DELETE("/:id", requireAuth, ctrl.Image.Delete)
		}
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying Gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// cors allows the public site to call the API from another origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
