package export

import (
	"fmt"
	"net/http"
	"net/url"

	"barbercrm/internal/middleware"
	"barbercrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(branchScoped *gin.RouterGroup) {
	branchScoped.GET("/export/:branch", h.Download)
}

// Download отдаёт все записи филиала одной книгой Excel.
// @Summary		Выгрузка в Excel
// @Tags		Выгрузка
// @Security	BearerAuth
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param		branch	path	string	true	"Название филиала"
// @Success		200	{file}	file	"Книга .xlsx"
// @Router		/export/{branch} [GET]
func (h *Handler) Download(c *gin.Context) {
	buf, err := h.service.Workbook(c.Request.Context(), middleware.BranchID(c))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to build workbook")
		return
	}

	filename := fmt.Sprintf("%s.xlsx", middleware.BranchName(c))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
