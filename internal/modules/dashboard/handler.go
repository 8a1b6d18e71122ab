package dashboard

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"barbercrm/internal/middleware"
	"barbercrm/internal/pkg/response"
	"barbercrm/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
	readLimit  = 512
)

type Handler struct {
	service  *Service
	hub      *Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewHandler(service *Service, hub *Hub, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the token is checked before the upgrade
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// RegisterRoutes mounts the dashboard, goals and live feed routes. The group
// must already enforce branch ownership.
func (h *Handler) RegisterRoutes(branchScoped *gin.RouterGroup) {
	branchScoped.GET("/dashboard-summary/:branch", h.GetSummary)
	branchScoped.GET("/goals/:branch", h.GetGoals)
	branchScoped.PUT("/goals/:branch", h.UpdateGoals)
	branchScoped.GET("/ws/dashboard/:branch", h.Live)
}

// GetSummary возвращает показатели филиала за месяц.
// @Summary		Сводка дашборда
// @Tags		Дашборд
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Param		month	query	string	false	"Месяц (YYYY-MM или «Март 2026»)"
// @Success		200	{object}	map[string]interface{}	"Показатели по всем метрикам"
// @Router		/dashboard-summary/{branch} [GET]
func (h *Handler) GetSummary(c *gin.Context) {
	month := h.service.CurrentMonth()
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		m, err := tracking.ParseMonth(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be YYYY-MM or «Март 2026»")
			return
		}
		month = m
	}

	summary, err := h.service.Summary(c.Request.Context(), middleware.BranchID(c), month)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// GetGoals возвращает действующие цели филиала.
// @Summary		Цели филиала
// @Tags		Дашборд
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Success		200	{object}	map[string]interface{}	"Цели"
// @Router		/goals/{branch} [GET]
func (h *Handler) GetGoals(c *gin.Context) {
	view, err := h.service.Goals(c.Request.Context(), middleware.BranchID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// UpdateGoals заменяет переопределённые цели филиала.
// @Summary		Изменить цели
// @Tags		Дашборд
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Param		request	body	UpdateGoalsRequest	true	"Новые цели"
// @Success		200	{object}	map[string]interface{}	"Цели обновлены"
// @Failure		422	{object}	map[string]interface{}	"Неизвестная метрика или неверная цель"
// @Router		/goals/{branch} [PUT]
func (h *Handler) UpdateGoals(c *gin.Context) {
	var req UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Body must be {\"overrides\": {metric: target}}")
		return
	}

	view, err := h.service.UpdateGoals(c.Request.Context(), middleware.BranchID(c), req.Overrides)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Live держит websocket и отправляет свежий дашборд после каждой отправки форм.
// @Summary		Живой дашборд
// @Tags		Дашборд
// @Security	BearerAuth
// @Param		branch	path	string	true	"Название филиала"
// @Param		token	query	string	false	"JWT для браузеров"
// @Router		/ws/dashboard/{branch} [GET]
func (h *Handler) Live(c *gin.Context) {
	branchID := middleware.BranchID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Register(branchID, conn)
	defer h.hub.Unregister(branchID, conn)

	ctx := c.Request.Context()
	if summary, err := h.service.Summary(ctx, branchID, h.service.CurrentMonth()); err == nil {
		if err := h.hub.Send(branchID, conn, LiveEvent{Type: "snapshot", Summary: summary}); err != nil {
			return
		}
	}

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	// clients only listen; reading keeps pongs and close frames flowing
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBranchNotFound):
		response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
	case errors.Is(err, tracking.ErrUnknownMetric):
		response.Error(c, http.StatusUnprocessableEntity, "UNKNOWN_METRIC", err.Error())
	case errors.Is(err, tracking.ErrInvalidGoalTarget):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_GOAL", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
