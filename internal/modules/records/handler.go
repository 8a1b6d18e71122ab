package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"barbercrm/internal/middleware"
	"barbercrm/internal/pkg/response"
	"barbercrm/internal/submission"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST and GET /{resource}/:branch for every form kind.
// The group must already enforce branch ownership.
func (h *Handler) RegisterRoutes(branchScoped *gin.RouterGroup) {
	for _, kind := range submission.Kinds() {
		path := "/" + kind.Resource() + "/:branch"
		branchScoped.POST(path, h.Submit(kind))
		branchScoped.GET(path, h.History(kind))
	}
}

// Submit принимает одну или несколько строк формы.
// @Summary		Отправить записи формы
// @Tags		Записи
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Success		201	{object}	map[string]interface{}	"Записи сохранены"
// @Failure		422	{object}	map[string]interface{}	"Строка не прошла проверку, ничего не сохранено"
// @Router		/{resource}/{branch} [POST]
func (h *Handler) Submit(kind submission.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := decodeRows(c.Request.Body)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be a JSON object or array of objects")
			return
		}

		records, err := h.service.Submit(c.Request.Context(), middleware.BranchID(c), middleware.BranchName(c), kind, rows)
		if err != nil {
			var rvf *submission.RowValidationFailed
			switch {
			case errors.As(err, &rvf):
				response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "ROW_VALIDATION_FAILED", rvf.Error(), gin.H{
					"row":   rvf.Row,
					"field": rvf.Field,
					"kind":  rvf.Kind(),
				})
			case errors.Is(err, submission.ErrEmptyBatch):
				response.Error(c, http.StatusBadRequest, "EMPTY_BATCH", "At least one row is required")
			default:
				_ = c.Error(err)
				response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to save records")
			}
			return
		}

		response.Success(c, http.StatusCreated, gin.H{
			"created": len(records),
			"records": records,
		})
	}
}

// History возвращает сохранённые записи филиала, новые первыми.
// @Summary		История записей
// @Tags		Записи
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Success		200	{object}	map[string]interface{}	"Список записей"
// @Router		/{resource}/{branch} [GET]
func (h *Handler) History(kind submission.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.service.History(c.Request.Context(), middleware.BranchID(c), kind)
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to load records")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"items": items})
	}
}

// decodeRows accepts either one object or an array of objects. Numbers are
// kept as json.Number so integer fields are not rounded through float64.
func decodeRows(body io.Reader) ([]submission.Row, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if raw[0] == '[' {
		var rows []submission.Row
		if err := dec.Decode(&rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var row submission.Row
	if err := dec.Decode(&row); err != nil {
		return nil, err
	}
	return []submission.Row{row}, nil
}
