package handlers

import (
	"github.com/gin-gonic/gin"

	wmdto "lifeline/internal/application/watermark/dto"
	"lifeline/internal/application/watermark/usecases"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// WatermarkHandler covers issuance, forensic tracing, and media marking.
// Tracing and embedding are operator tools and stay behind the admin gate.
type WatermarkHandler struct {
	issueWatermarkUC issueWatermarkUseCase
	listIssuancesUC  listIssuancesUseCase
	traceTokenUC     traceTokenUseCase
	embedMediaUC     embedMediaUseCase
	logger           logger.Interface
}

func NewWatermarkHandler(
	issueWatermarkUC issueWatermarkUseCase,
	listIssuancesUC listIssuancesUseCase,
	traceTokenUC traceTokenUseCase,
	embedMediaUC embedMediaUseCase,
	logger logger.Interface,
) *WatermarkHandler {
	return &WatermarkHandler{
		issueWatermarkUC: issueWatermarkUC,
		listIssuancesUC:  listIssuancesUC,
		traceTokenUC:     traceTokenUC,
		embedMediaUC:     embedMediaUC,
		logger:           logger,
	}
}

type IssueWatermarkRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	ViewerID  uint   `json:"viewer_id" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=visible invisible forensic"`
}

func (h *WatermarkHandler) IssueWatermark(c *gin.Context) {
	var req IssueWatermarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue watermark", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.IssueWatermarkCommand{
		ContentID: req.ContentID,
		ViewerID:  req.ViewerID,
		Kind:      req.Kind,
	}

	issuance, err := h.issueWatermarkUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, wmdto.IssuanceToDTO(issuance), "Watermark issued")
}

func (h *WatermarkHandler) ListIssuances(c *gin.Context) {
	contentID := c.Param("content_id")
	page, pageSize := utils.ParsePagination(c)

	issuances, total, err := h.listIssuancesUC.Execute(c.Request.Context(), contentID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"issuances":   wmdto.IssuancesToDTOs(issuances),
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": utils.TotalPages(total, pageSize),
	})
}

func (h *WatermarkHandler) TraceToken(c *gin.Context) {
	token := c.Param("token")

	result, err := h.traceTokenUC.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

type EmbedMediaRequest struct {
	Media      []byte `json:"media" binding:"required"`
	EmbedToken string `json:"embed_token" binding:"required"`
}

func (h *WatermarkHandler) EmbedMedia(c *gin.Context) {
	var req EmbedMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for embed media", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.EmbedMediaCommand{
		Media:      req.Media,
		EmbedToken: req.EmbedToken,
	}

	marked, err := h.embedMediaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"media": marked})
}
