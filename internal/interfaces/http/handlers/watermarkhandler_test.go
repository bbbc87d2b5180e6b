package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmdto "lifeline/internal/application/watermark/dto"
	"lifeline/internal/application/watermark/usecases"
	"lifeline/internal/domain/watermark"
	wmvo "lifeline/internal/domain/watermark/valueobjects"
	"lifeline/internal/interfaces/http/handlers/testutil"
	"lifeline/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockIssueWatermarkUC struct {
	result *watermark.Issuance
	err    error
}

func (m *mockIssueWatermarkUC) Execute(ctx context.Context, cmd usecases.IssueWatermarkCommand) (*watermark.Issuance, error) {
	return m.result, m.err
}

type mockListIssuancesUC struct {
	result []*watermark.Issuance
	total  int64
	err    error
}

func (m *mockListIssuancesUC) Execute(ctx context.Context, contentID string, page, pageSize int) ([]*watermark.Issuance, int64, error) {
	return m.result, m.total, m.err
}

type mockTraceTokenUC struct {
	result *wmdto.TraceResultDTO
	err    error
}

func (m *mockTraceTokenUC) Execute(ctx context.Context, embedToken string) (*wmdto.TraceResultDTO, error) {
	return m.result, m.err
}

type mockEmbedMediaUC struct {
	result []byte
	err    error
}

func (m *mockEmbedMediaUC) Execute(ctx context.Context, cmd usecases.EmbedMediaCommand) ([]byte, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestIssuance(t *testing.T) *watermark.Issuance {
	t.Helper()
	issuance, err := watermark.NewIssuance(
		"wm_test123",
		"8f14e45f-ceea-4e17-8bdd-1c7f6c2e9b01",
		"content-1",
		7,
		"token-abc123",
		wmvo.KindForensic,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return issuance
}

func newTestWatermarkHandler(
	issueUC issueWatermarkUseCase,
	listUC listIssuancesUseCase,
	traceUC traceTokenUseCase,
	embedUC embedMediaUseCase,
) *WatermarkHandler {
	return NewWatermarkHandler(issueUC, listUC, traceUC, embedUC, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestWatermarkHandler_IssueWatermark_Success(t *testing.T) {
	issuance := createTestIssuance(t)
	handler := newTestWatermarkHandler(&mockIssueWatermarkUC{result: issuance}, nil, nil, nil)

	reqBody := IssueWatermarkRequest{ContentID: "content-1", ViewerID: 7, Kind: "forensic"}
	c, w := testutil.NewTestContext(http.MethodPost, "/watermarks", reqBody)

	handler.IssueWatermark(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "wm_test123")
	assert.Contains(t, string(resp.Data), "token-abc123")
}

func TestWatermarkHandler_IssueWatermark_InvalidKind(t *testing.T) {
	handler := newTestWatermarkHandler(&mockIssueWatermarkUC{}, nil, nil, nil)

	reqBody := map[string]interface{}{"content_id": "content-1", "viewer_id": 7, "kind": "hologram"}
	c, w := testutil.NewTestContext(http.MethodPost, "/watermarks", reqBody)

	handler.IssueWatermark(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWatermarkHandler_ListIssuances(t *testing.T) {
	issuance := createTestIssuance(t)
	handler := newTestWatermarkHandler(nil, &mockListIssuancesUC{result: []*watermark.Issuance{issuance}, total: 1}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/contents/content-1/watermarks", nil)
	testutil.SetURLParam(c, "content_id", "content-1")

	handler.ListIssuances(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"total":1`)
}

func TestWatermarkHandler_TraceToken_Found(t *testing.T) {
	issuance := createTestIssuance(t)
	result := &wmdto.TraceResultDTO{Found: true, Issuance: wmdto.IssuanceToDTO(issuance)}
	handler := newTestWatermarkHandler(nil, nil, &mockTraceTokenUC{result: result}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/watermarks/trace/token-abc123", nil)
	testutil.SetURLParam(c, "token", "token-abc123")

	handler.TraceToken(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"viewer_id":7`)
}

func TestWatermarkHandler_TraceToken_NotFoundIsOK(t *testing.T) {
	handler := newTestWatermarkHandler(nil, nil, &mockTraceTokenUC{result: &wmdto.TraceResultDTO{Found: false}}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/watermarks/trace/unknown", nil)
	testutil.SetURLParam(c, "token", "unknown")

	handler.TraceToken(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"found":false`)
}

func TestWatermarkHandler_EmbedMedia_Success(t *testing.T) {
	handler := newTestWatermarkHandler(nil, nil, nil, &mockEmbedMediaUC{result: []byte("marked media")})

	reqBody := EmbedMediaRequest{Media: []byte("raw media"), EmbedToken: "token-abc123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/watermarks/embed", reqBody)

	handler.EmbedMedia(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWatermarkHandler_EmbedMedia_FailureSurfaces(t *testing.T) {
	handler := newTestWatermarkHandler(nil, nil, nil, &mockEmbedMediaUC{err: errors.NewInvalidInputError("unknown embed token")})

	reqBody := EmbedMediaRequest{Media: []byte("raw media"), EmbedToken: "unknown"}
	c, w := testutil.NewTestContext(http.MethodPost, "/watermarks/embed", reqBody)

	handler.EmbedMedia(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
