// Package server exposes the trainer as a JSON HTTP API consumed by the
// browser UI, plus the static assets of the UI itself.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"go.uber.org/zap"
)

// ServiceI is everything the handlers need from the service layer.
type ServiceI interface {
	Verbs() ([]models.VerbEntry, error)
	Verb(id string) (models.VerbEntry, error)
	Search(query string) ([]models.VerbEntry, error)

	StartDrill(drill models.DrillType) (string, models.Exercise, error)
	Submit(id, answer string) (models.Feedback, error)
	Next(id string) (models.Exercise, error)
	Reset(id string) error
	End(id string) error
	Stats(id string) (models.SessionStats, error)

	ExampleSentence(ctx context.Context, verb, tense string) (models.Sentence, error)
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	service ServiceI
	log     *zap.Logger
}

func New(cfg config.ServerConfig, env string, service ServiceI, log *zap.Logger) *Server {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		service: service,
		log:     log,
	}
	s.setupRoutes(cfg.StaticDir)

	s.http = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes(staticDir string) {
	api := s.router.Group("/api")
	{
		api.GET("/verbs", s.listVerbs)
		api.GET("/verbs/:id", s.getVerb)
		api.GET("/search", s.search)

		api.POST("/practice", s.startDrill)
		api.GET("/practice/:id", s.sessionStats)
		api.POST("/practice/:id/answer", s.submitAnswer)
		api.POST("/practice/:id/next", s.nextExercise)
		api.POST("/practice/:id/reset", s.resetSession)
		api.DELETE("/practice/:id", s.endSession)

		api.POST("/sentence", s.generateSentence)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The web UI, including its service worker registration assets.
	if staticDir != "" {
		s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}
}

// Run starts the HTTP server without blocking.
func (s *Server) Run() {
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("http server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
