package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "multimodal-chat/internal/chat/delivery/http"
	"multimodal-chat/internal/middleware"
	"multimodal-chat/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI is not exposed in production.
	if srv.environment != model.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes and the asset mount.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api, srv.chatHandler, mw)
	srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")

	if srv.outputsDir != "" {
		srv.gin.Static("/outputs", srv.outputsDir)
		srv.l.Infof(ctx, "Serving generated assets from %s at /outputs", srv.outputsDir)
	}
}
