package auth

import (
	"errors"
	"net/http"

	"barbercrm/internal/middleware"
	"barbercrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

// Register регистрирует новый филиал.
// @Summary		Зарегистрировать филиал
// @Tags		Аутентификация
// @Param		request	body	RegisterRequest	true	"Название, адрес, управляющий, пароль"
// @Success		201	{object}	map[string]interface{}	"Филиал создан, возвращается JWT токен"
// @Failure		400	{object}	map[string]interface{}	"Ошибка валидации"
// @Failure		409	{object}	map[string]interface{}	"Филиал с таким названием уже существует"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	branch, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBranchExists) {
			response.Error(c, http.StatusConflict, "BRANCH_EXISTS", "A branch with this name is already registered")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register branch")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"branch": toPublic(branch),
		"token":  token,
	})
}

// Login выдаёт JWT токен филиалу по названию и паролю.
// @Summary		Войти
// @Tags		Аутентификация
// @Param		request	body	LoginRequest	true	"Название филиала и пароль"
// @Success		200	{object}	map[string]interface{}	"Успешная авторизация"
// @Failure		401	{object}	map[string]interface{}	"Неверное название или пароль"
// @Failure		423	{object}	map[string]interface{}	"Вход временно заблокирован"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Branch name or password is incorrect")
		case errors.Is(err, ErrAccountLocked):
			response.Error(c, http.StatusLocked, "ACCOUNT_LOCKED", "Too many failed attempts, try again later")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"branch": toPublic(result.Branch),
		"token":  result.AccessToken,
	})
}

// GetMe возвращает филиал текущей сессии.
// @Summary		Текущий филиал
// @Tags		Аутентификация
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}	"Данные филиала"
// @Failure		401	{object}	map[string]interface{}	"Нет токена или токен истёк"
// @Router		/auth/me [GET]
func (h *Handler) GetMe(c *gin.Context) {
	branch, err := h.service.GetCurrentBranch(c.Request.Context(), middleware.BranchID(c))
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Branch no longer exists")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load branch")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"branch": toPublic(branch)})
}
