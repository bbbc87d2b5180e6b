package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consentdto "lifeline/internal/application/consent/dto"
	"lifeline/internal/application/consent/usecases"
	"lifeline/internal/domain/consent"
	"lifeline/internal/interfaces/http/handlers/testutil"
	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetActiveDocumentUC struct {
	result *consentdto.DocumentDTO
	err    error
}

func (m *mockGetActiveDocumentUC) Execute(ctx context.Context) (*consentdto.DocumentDTO, error) {
	return m.result, m.err
}

type mockSignConsentUC struct {
	result  *consent.Signature
	err     error
	lastCmd usecases.SignConsentCommand
}

func (m *mockSignConsentUC) Execute(ctx context.Context, cmd usecases.SignConsentCommand) (*consent.Signature, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCheckConsentUC struct {
	result *consentdto.ConsentStatusDTO
	err    error
}

func (m *mockCheckConsentUC) Execute(ctx context.Context, userID uint) (*consentdto.ConsentStatusDTO, error) {
	return m.result, m.err
}

type mockRevokeConsentUC struct {
	result *consent.Signature
	err    error
}

func (m *mockRevokeConsentUC) Execute(ctx context.Context, cmd usecases.RevokeConsentCommand) (*consent.Signature, error) {
	return m.result, m.err
}

type mockListSignaturesUC struct {
	result []*consent.Signature
	err    error
}

func (m *mockListSignaturesUC) Execute(ctx context.Context, userID uint) ([]*consent.Signature, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

const testAgreementText = "# Agreement\n\nDo not redistribute protected content."

func createTestSignature(t *testing.T) *consent.Signature {
	t.Helper()
	doc, err := consent.NewDocument(1, testAgreementText, 30, time.Now().UTC())
	require.NoError(t, err)
	sig, err := consent.NewSignature("nda_test123", 7, doc, consent.ReadingMetrics{
		TimeSpentReadingSeconds: 45,
		ScrolledToBottom:        true,
	}, time.Now().UTC())
	require.NoError(t, err)
	return sig
}

func newTestConsentHandler(
	docUC getActiveDocumentUseCase,
	signUC signConsentUseCase,
	checkUC checkConsentUseCase,
	revokeUC revokeConsentUseCase,
	listUC listSignaturesUseCase,
) *ConsentHandler {
	return NewConsentHandler(docUC, signUC, checkUC, revokeUC, listUC, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestConsentHandler_GetDocument(t *testing.T) {
	doc := &consentdto.DocumentDTO{
		Version:            2,
		Text:               testAgreementText,
		Checksum:           consent.ChecksumText(testAgreementText),
		MinimumReadSeconds: 30,
		ActivatedAt:        time.Now().UTC(),
	}
	handler := newTestConsentHandler(&mockGetActiveDocumentUC{result: doc}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/consent/document", nil)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.GetDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"version":2`)
}

func TestConsentHandler_GetDocument_NoneActive(t *testing.T) {
	handler := newTestConsentHandler(&mockGetActiveDocumentUC{err: errors.NewNotFoundError("no active agreement")}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/consent/document", nil)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.GetDocument(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConsentHandler_SignConsent_Success(t *testing.T) {
	sig := createTestSignature(t)
	mockUC := &mockSignConsentUC{result: sig}
	handler := newTestConsentHandler(nil, mockUC, nil, nil, nil)

	reqBody := SignConsentRequest{
		DocumentVersion:         1,
		DocumentChecksum:        consent.ChecksumText(testAgreementText),
		TimeSpentReadingSeconds: 45,
		ScrolledToBottom:        true,
		BiometricProof:          "proof-blob",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/consent/signatures", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.SignConsent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	// Identity comes from the verified token, never from the body.
	assert.Equal(t, uint(7), mockUC.lastCmd.UserID)
}

func TestConsentHandler_SignConsent_Unauthenticated(t *testing.T) {
	handler := newTestConsentHandler(nil, &mockSignConsentUC{}, nil, nil, nil)

	reqBody := SignConsentRequest{DocumentVersion: 1, DocumentChecksum: "abc"}
	c, w := testutil.NewTestContext(http.MethodPost, "/consent/signatures", reqBody)

	handler.SignConsent(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConsentHandler_SignConsent_PreconditionFailure(t *testing.T) {
	handler := newTestConsentHandler(nil, &mockSignConsentUC{err: errors.NewInsufficientReadTimeError()}, nil, nil, nil)

	reqBody := SignConsentRequest{
		DocumentVersion:  1,
		DocumentChecksum: consent.ChecksumText(testAgreementText),
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/consent/signatures", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.SignConsent(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestConsentHandler_GetStatus(t *testing.T) {
	now := time.Now().UTC()
	status := &consentdto.ConsentStatusDTO{Valid: true, DocumentVersion: 1, SignedAt: &now}
	handler := newTestConsentHandler(nil, nil, &mockCheckConsentUC{result: status}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/consent/status", nil)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"valid":true`)
}

func TestConsentHandler_RevokeConsent_RequiresReason(t *testing.T) {
	handler := newTestConsentHandler(nil, nil, nil, &mockRevokeConsentUC{}, nil)

	reqBody := map[string]interface{}{"document_version": 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/consent/revoke", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.RevokeConsent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConsentHandler_RevokeConsent_Success(t *testing.T) {
	sig := createTestSignature(t)
	require.NoError(t, sig.SetID(1))
	require.NoError(t, sig.Revoke("device lost", time.Now().UTC()))
	handler := newTestConsentHandler(nil, nil, nil, &mockRevokeConsentUC{result: sig}, nil)

	reqBody := RevokeConsentRequest{DocumentVersion: 1, Reason: "device lost"}
	c, w := testutil.NewTestContext(http.MethodPost, "/consent/revoke", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.RevokeConsent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"is_valid":false`)
}

func TestConsentHandler_ListSignatures(t *testing.T) {
	sig := createTestSignature(t)
	handler := newTestConsentHandler(nil, nil, nil, nil, &mockListSignaturesUC{result: []*consent.Signature{sig}})

	c, w := testutil.NewTestContext(http.MethodGet, "/consent/signatures", nil)
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.ListSignatures(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "nda_test123")
}
