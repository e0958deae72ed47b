package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportMembers 导出成员通讯录
// GET /api/members/export
func (h *ExportHandler) ExportMembers(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportMembers(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

// ExportGroupRoster 导出小组名单
// GET /api/groups/:id/members/export
func (h *ExportHandler) ExportGroupRoster(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportGroupRoster(c.Request.Context(), groupID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 15001, err.Error())
	default:
		response.InternalError(c)
	}
}
