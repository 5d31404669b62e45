package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/service"
	"go.uber.org/zap"
)

type startDrillRequest struct {
	Drill string `json:"drill" binding:"required"`
}

type startDrillResponse struct {
	SessionID string          `json:"session_id"`
	Exercise  models.Exercise `json:"exercise"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type sentenceRequest struct {
	Verb  string `json:"verb" binding:"required"`
	Tense string `json:"tense" binding:"required"`
}

func (s *Server) listVerbs(c *gin.Context) {
	verbs, err := s.service.Verbs()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verbs": verbs})
}

func (s *Server) getVerb(c *gin.Context) {
	verb, err := s.service.Verb(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, verb)
}

func (s *Server) search(c *gin.Context) {
	verbs, err := s.service.Search(c.Query("q"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verbs": verbs})
}

func (s *Server) startDrill(c *gin.Context) {
	var req startDrillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ex, err := s.service.StartDrill(models.DrillType(req.Drill))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, startDrillResponse{SessionID: id, Exercise: ex})
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := s.service.Submit(c.Param("id"), req.Answer)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

func (s *Server) nextExercise(c *gin.Context) {
	ex, err := s.service.Next(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": ex})
}

func (s *Server) resetSession(c *gin.Context) {
	if err := s.service.Reset(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) endSession(c *gin.Context) {
	if err := s.service.End(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) sessionStats(c *gin.Context) {
	stats, err := s.service.Stats(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) generateSentence(c *gin.Context) {
	var req sentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sentence, err := s.service.ExampleSentence(c.Request.Context(), req.Verb, req.Tense)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sentence)
}

// fail maps service errors to HTTP statuses and renders the error body.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnknownDrill), errors.Is(err, service.ErrInvalidTense):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrVerbNotFound), errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoPendingExercise):
		status = http.StatusConflict
	case errors.Is(err, service.ErrCatalogUnavailable), errors.Is(err, service.ErrSentenceUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, service.ErrBadSentence):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
