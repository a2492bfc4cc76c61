package http

import (
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/config"
	"github.com/mkravets/lingochat-server/internal/core"
	"github.com/mkravets/lingochat-server/internal/translate"
)

// NewServer builds the HTTP server: REST endpoints plus the websocket bridge.
func NewServer(hub *core.Hub, translator *translate.Translator, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(LoggerMiddleware(logger))
	// The browser client is served from another origin.
	engine.Use(cors.Default())

	api := NewAPIHandlers(translator, logger)

	engine.GET("/health", healthHandler)
	engine.GET("/api/languages", api.Languages)
	engine.POST("/api/translate", api.Translate)
	engine.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
