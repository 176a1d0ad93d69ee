// Package server exposes the consultation agent and facility lookups over HTTP.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yonghwan1106/ai-carebridge/internal/agent"
	"github.com/yonghwan1106/ai-carebridge/internal/core"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"development"`
}

type Server struct {
	engine *gin.Engine
	// agent is nil when no model credential is configured; chat then returns
	// a configuration error instead of failing at startup.
	agent      *agent.Agent
	publicData *publicdata.Client
}

func New(cfg Config, a *agent.Agent, publicData *publicdata.Client) *Server {
	if core.ParseEnvironment(cfg.Environment).IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:     gin.New(),
		agent:      a,
		publicData: publicData,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger())

	s.engine.GET("/health", s.handleHealth)

	api := s.engine.Group("/api")
	{
		api.POST("/chat", s.handleChat)
		api.POST("/facilities", s.handleFacilitiesPost)
		api.GET("/facilities", s.handleFacilitiesGet)
	}

	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	}
}
