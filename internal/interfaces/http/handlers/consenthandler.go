package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	consentdto "lifeline/internal/application/consent/dto"
	"lifeline/internal/application/consent/usecases"
	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/utils"
)

// ConsentHandler serves the NDA attestation flow: reading the active
// agreement, signing it, and managing the signature afterwards.
type ConsentHandler struct {
	getActiveDocumentUC getActiveDocumentUseCase
	signConsentUC       signConsentUseCase
	checkConsentUC      checkConsentUseCase
	revokeConsentUC     revokeConsentUseCase
	listSignaturesUC    listSignaturesUseCase
	logger              logger.Interface
}

func NewConsentHandler(
	getActiveDocumentUC getActiveDocumentUseCase,
	signConsentUC signConsentUseCase,
	checkConsentUC checkConsentUseCase,
	revokeConsentUC revokeConsentUseCase,
	listSignaturesUC listSignaturesUseCase,
	logger logger.Interface,
) *ConsentHandler {
	return &ConsentHandler{
		getActiveDocumentUC: getActiveDocumentUC,
		signConsentUC:       signConsentUC,
		checkConsentUC:      checkConsentUC,
		revokeConsentUC:     revokeConsentUC,
		listSignaturesUC:    listSignaturesUC,
		logger:              logger,
	}
}

func (h *ConsentHandler) GetDocument(c *gin.Context) {
	doc, err := h.getActiveDocumentUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, doc)
}

type SignConsentRequest struct {
	DocumentVersion         int    `json:"document_version" binding:"required"`
	DocumentChecksum        string `json:"document_checksum" binding:"required"`
	TimeSpentReadingSeconds int    `json:"time_spent_reading_seconds"`
	ScrolledToBottom        bool   `json:"scrolled_to_bottom"`
	BiometricProof          string `json:"biometric_proof"`
}

func (h *ConsentHandler) SignConsent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SignConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for sign consent", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SignConsentCommand{
		UserID:                  userID,
		DocumentVersion:         req.DocumentVersion,
		DocumentChecksum:        req.DocumentChecksum,
		TimeSpentReadingSeconds: req.TimeSpentReadingSeconds,
		ScrolledToBottom:        req.ScrolledToBottom,
		BiometricProof:          req.BiometricProof,
	}

	sig, err := h.signConsentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, consentdto.SignatureToDTO(sig), "Consent recorded")
}

func (h *ConsentHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.checkConsentUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, status)
}

type RevokeConsentRequest struct {
	DocumentVersion int    `json:"document_version" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
}

func (h *ConsentHandler) RevokeConsent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RevokeConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for revoke consent", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RevokeConsentCommand{
		UserID:          userID,
		DocumentVersion: req.DocumentVersion,
		Reason:          req.Reason,
	}

	sig, err := h.revokeConsentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, consentdto.SignatureToDTO(sig))
}

func (h *ConsentHandler) ListSignatures(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sigs, err := h.listSignaturesUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"signatures": consentdto.SignaturesToDTOs(sigs)})
}

// currentUserID pulls the authenticated user from the context set by the
// auth middleware. A missing identity writes the response itself.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		c.Abort()
		return 0, false
	}

	userID, ok := v.(uint)
	if !ok || userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		c.Abort()
		return 0, false
	}

	return userID, true
}
