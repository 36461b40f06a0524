package http

import (
	"github.com/gin-gonic/gin"

	"multimodal-chat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Generation endpoints are rate limited; transcription is cheap enough not to be.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.RateLimit(), h.Message)
		chat.POST("/transcriptions", h.Transcribe)
	}
}
