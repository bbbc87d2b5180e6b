package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	viodto "lifeline/internal/application/violation/dto"
	"lifeline/internal/application/violation/usecases"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// ViolationHandler receives capture reports from client devices and exposes
// the strike state to the subscriber and to operators.
type ViolationHandler struct {
	reportCaptureUC  reportCaptureUseCase
	getStatusUC      getViolationStatusUseCase
	listViolationsUC listViolationsUseCase
	logger           logger.Interface
}

func NewViolationHandler(
	reportCaptureUC reportCaptureUseCase,
	getStatusUC getViolationStatusUseCase,
	listViolationsUC listViolationsUseCase,
	logger logger.Interface,
) *ViolationHandler {
	return &ViolationHandler{
		reportCaptureUC:  reportCaptureUC,
		getStatusUC:      getStatusUC,
		listViolationsUC: listViolationsUC,
		logger:           logger,
	}
}

type ReportCaptureRequest struct {
	CreatorID uint   `json:"creator_id" binding:"required"`
	ContentID string `json:"content_id" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=screenshot recording other"`
}

// ReportCapture attributes the report to the authenticated subscriber; the
// reporting device cannot file violations on someone else's behalf.
func (h *ViolationHandler) ReportCapture(c *gin.Context) {
	subscriberID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ReportCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report capture", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReportCaptureCommand{
		SubscriberID: subscriberID,
		CreatorID:    req.CreatorID,
		ContentID:    req.ContentID,
		Kind:         req.Kind,
	}

	result, err := h.reportCaptureUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Capture recorded")
}

func (h *ViolationHandler) GetOwnStatus(c *gin.Context) {
	subscriberID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.getStatusUC.Execute(c.Request.Context(), subscriberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, status)
}

func (h *ViolationHandler) GetSubscriberStatus(c *gin.Context) {
	subscriberID, err := parseSubscriberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status, err := h.getStatusUC.Execute(c.Request.Context(), subscriberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, status)
}

func (h *ViolationHandler) ListViolations(c *gin.Context) {
	subscriberID, err := parseSubscriberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := utils.ParsePagination(c)

	records, total, err := h.listViolationsUC.Execute(c.Request.Context(), subscriberID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"violations":  viodto.RecordsToDTOs(records),
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": utils.TotalPages(total, pageSize),
	})
}

func parseSubscriberID(c *gin.Context) (uint, error) {
	raw := c.Param("subscriber_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewInvalidInputError("invalid subscriber ID")
	}
	return uint(id), nil
}
