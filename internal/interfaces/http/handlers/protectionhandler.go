package handlers

import (
	"github.com/gin-gonic/gin"

	protdto "lifeline/internal/application/protection/dto"
	"lifeline/internal/application/protection/usecases"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// ProtectionHandler fronts protected content: the composed access gate and
// the audit trail behind it.
type ProtectionHandler struct {
	requestAccessUC requestAccessUseCase
	listAccessLogUC listAccessLogUseCase
	logger          logger.Interface
}

func NewProtectionHandler(
	requestAccessUC requestAccessUseCase,
	listAccessLogUC listAccessLogUseCase,
	logger logger.Interface,
) *ProtectionHandler {
	return &ProtectionHandler{
		requestAccessUC: requestAccessUC,
		listAccessLogUC: listAccessLogUC,
		logger:          logger,
	}
}

func (h *ProtectionHandler) RequestAccess(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contentID := c.Param("content_id")

	cmd := usecases.RequestAccessCommand{
		UserID:    userID,
		ContentID: contentID,
	}

	grant, err := h.requestAccessUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, grant)
}

func (h *ProtectionHandler) ListAccessLog(c *gin.Context) {
	contentID := c.Param("content_id")
	page, pageSize := utils.ParsePagination(c)

	entries, total, err := h.listAccessLogUC.Execute(c.Request.Context(), contentID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"entries":     protdto.AccessEntriesToDTOs(entries),
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": utils.TotalPages(total, pageSize),
	})
}
