package handlers

import (
	"github.com/gin-gonic/gin"

	fpdto "lifeline/internal/application/fingerprint/dto"
	"lifeline/internal/application/fingerprint/usecases"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// TrustHandler serves content provenance: fingerprint registration for
// creators and the public verification surface.
type TrustHandler struct {
	anchorContentUC   anchorContentUseCase
	verifyHashUC      verifyHashUseCase
	getBadgeUC        getBadgeUseCase
	reanchorPendingUC reanchorPendingUseCase
	logger            logger.Interface
}

func NewTrustHandler(
	anchorContentUC anchorContentUseCase,
	verifyHashUC verifyHashUseCase,
	getBadgeUC getBadgeUseCase,
	reanchorPendingUC reanchorPendingUseCase,
	logger logger.Interface,
) *TrustHandler {
	return &TrustHandler{
		anchorContentUC:   anchorContentUC,
		verifyHashUC:      verifyHashUC,
		getBadgeUC:        getBadgeUC,
		reanchorPendingUC: reanchorPendingUC,
		logger:            logger,
	}
}

type AnchorContentRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	Content   []byte `json:"content" binding:"required"`
}

func (h *TrustHandler) AnchorContent(c *gin.Context) {
	var req AnchorContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for anchor content", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AnchorContentCommand{
		ContentID: req.ContentID,
		Content:   req.Content,
	}

	fp, err := h.anchorContentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, fpdto.FingerprintToDTO(fp), "Content fingerprint registered")
}

func (h *TrustHandler) VerifyHash(c *gin.Context) {
	hash := c.Param("hash")

	result, err := h.verifyHashUC.Execute(c.Request.Context(), hash)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TrustHandler) GetBadge(c *gin.Context) {
	contentID := c.Param("content_id")

	badge, err := h.getBadgeUC.Execute(c.Request.Context(), contentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// An unanchored or unknown content yields a null badge, not an error.
	utils.OKResponse(c, fpdto.BadgeToDTO(badge))
}

func (h *TrustHandler) ReanchorPending(c *gin.Context) {
	result, err := h.reanchorPendingUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"attempted": result.Attempted,
		"anchored":  result.Anchored,
	})
}
