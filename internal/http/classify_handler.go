package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"universe-classifier/internal/dataset"
	"universe-classifier/internal/domain"
	"universe-classifier/internal/output"
	"universe-classifier/internal/repository"
	"universe-classifier/internal/service"
)

const maxBodyBytes = 10 << 20

// ClassifyHandler expone la clasificación de lotes y la consulta de runs persistidos.
type ClassifyHandler struct {
	logger *zap.Logger
	svc    *service.ClassificationService
}

// NewClassifyHandler crea una instancia de ClassifyHandler con dependencias necesarias.
func NewClassifyHandler(logger *zap.Logger, svc *service.ClassificationService) *ClassifyHandler {
	return &ClassifyHandler{
		logger: logger,
		svc:    svc,
	}
}

// ClassifyBatch maneja POST /classify. El body es el documento {"data": [...]}.
func (h *ClassifyHandler) ClassifyBatch(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	batch, err := dataset.Parse(body)
	if err != nil {
		h.logger.Warn("invalid classify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.svc.Run(c.Request.Context(), batch)
	if err != nil {
		h.logger.Error("classification run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify batch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run":        run.Summary(),
		"partition":  output.Partition(run.Outcomes),
		"outcomes":   run.Outcomes,
		"rejections": run.Rejections,
	})
}

// ClassifyOne maneja POST /classify/one con un único personaje.
func (h *ClassifyHandler) ClassifyOne(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	character, err := dataset.ParseCharacter(raw)
	if err != nil {
		h.logger.Warn("invalid character", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": h.svc.ClassifyOne(character)})
}

// GetRun maneja GET /runs/:id.
func (h *ClassifyHandler) GetRun(c *gin.Context) {
	id, ok := parseRunID(c)
	if !ok {
		return
	}
	summary, err := h.svc.GetRun(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": summary})
}

// ListOutcomes maneja GET /runs/:id/outcomes?universe=rings.
func (h *ClassifyHandler) ListOutcomes(c *gin.Context) {
	id, ok := parseRunID(c)
	if !ok {
		return
	}
	universe := domain.Universe(c.Query("universe"))
	outcomes, err := h.svc.ListOutcomes(c.Request.Context(), id, universe)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	if outcomes == nil {
		outcomes = []domain.Outcome{}
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

func parseRunID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ClassifyHandler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersistenceDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
	case errors.Is(err, service.ErrUnknownUniverse):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown universe"})
	case errors.Is(err, repository.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	default:
		h.logger.Error("run lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch run"})
	}
}
