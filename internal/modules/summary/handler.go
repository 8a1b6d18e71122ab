package summary

import (
	"errors"
	"net/http"
	"strings"

	"barbercrm/internal/middleware"
	"barbercrm/internal/pkg/response"
	"barbercrm/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(branchScoped *gin.RouterGroup) {
	branchScoped.POST("/branch-summary/:branch", h.Create)
	branchScoped.GET("/branch-summary/:branch", h.List)
}

// Create сохраняет итоги филиала за месяц.
// @Summary		Итоги месяца
// @Tags		Итоги
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Param		request	body	CreateRequest	true	"Менеджер и месяц"
// @Success		201	{object}	map[string]interface{}	"Строки итогов по метрикам"
// @Failure		503	{object}	map[string]interface{}	"Показатели недоступны"
// @Router		/branch-summary/{branch} [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	req.Manager = strings.TrimSpace(req.Manager)
	req.Month = strings.TrimSpace(req.Month)

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	rows, err := h.service.Create(c.Request.Context(), middleware.BranchID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMonth):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_MONTH", "Month must be YYYY-MM or «Март 2026»")
		case errors.Is(err, ErrCountsUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "COUNTS_UNAVAILABLE", "Record counts are temporarily unavailable")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "SUMMARY_FAILED", "Failed to save summary")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"items": rows})
}

// List возвращает сохранённые итоги филиала.
// @Summary		Список итогов
// @Tags		Итоги
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Success		200	{object}	map[string]interface{}	"Строки итогов"
// @Router		/branch-summary/{branch} [GET]
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), middleware.BranchID(c))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "SUMMARY_FAILED", "Failed to load summaries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": rows})
}
