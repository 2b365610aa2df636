// Package handler exposes the professional register over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"registry_backend/internal/api"
	"registry_backend/internal/feature/registry/domain"
	"registry_backend/internal/feature/registry/domain/entity"
	"registry_backend/internal/feature/registry/export"
	"registry_backend/internal/feature/registry/transport/http/dto"
	"registry_backend/internal/feature/registry/usecase"
)

// RegistryUsecase is the slice of registry behavior the handler consumes.
type RegistryUsecase interface {
	List(ctx context.Context) ([]entity.Professional, error)
	Search(ctx context.Context, term string) ([]entity.Professional, error)
	Create(ctx context.Context, p entity.Professional) (*entity.Professional, error)
	Update(ctx context.Context, id uint, patch usecase.ProfessionalPatch) (*entity.Professional, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// ProfessionalHandler serves the /api/professionals endpoints.
type ProfessionalHandler struct {
	registry RegistryUsecase
}

func NewProfessionalHandler(registry RegistryUsecase) *ProfessionalHandler {
	return &ProfessionalHandler{registry: registry}
}

// List handles GET /api/professionals. An empty or absent searchTerm
// returns the full register in insertion order.
func (h *ProfessionalHandler) List(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid query parameters"})
		return
	}

	ps, err := h.registry.Search(c.Request.Context(), q.SearchTerm)
	if err != nil {
		slog.Error("list professionals failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load professionals"})
		return
	}

	c.JSON(http.StatusOK, dto.NewProfessionalList(ps))
}

// ExportCSV handles GET /api/professionals/export and streams the full
// register as a CSV attachment.
func (h *ProfessionalHandler) ExportCSV(c *gin.Context) {
	ps, err := h.registry.List(c.Request.Context())
	if err != nil {
		slog.Error("export professionals failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load professionals"})
		return
	}

	filename := "professionals_data_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(ps)))
}

// Create handles POST /api/professionals.
func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "validation failed",
			Details: api.ValidationDetails(err),
		})
		return
	}

	created, err := h.registry.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		slog.Error("create professional failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create professional"})
		return
	}

	slog.Info("professional created", "id", created.ID, "trackingNumber", created.TrackingNumber)
	c.JSON(http.StatusCreated, dto.NewProfessionalResponse(*created))
}

// Update handles PATCH /api/professionals/:id.
func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "validation failed",
			Details: api.ValidationDetails(err),
		})
		return
	}

	updated, err := h.registry.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		if errors.Is(err, domain.ErrProfessionalNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "professional not found"})
			return
		}
		slog.Error("update professional failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update professional"})
		return
	}

	c.JSON(http.StatusOK, dto.NewProfessionalResponse(*updated))
}

// Delete handles DELETE /api/professionals/:id.
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.registry.Delete(c.Request.Context(), id)
	if err != nil {
		slog.Error("delete professional failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete professional"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "professional not found"})
		return
	}

	slog.Info("professional deleted", "id", id)
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid professional id"})
		return 0, false
	}
	return uint(id), true
}
