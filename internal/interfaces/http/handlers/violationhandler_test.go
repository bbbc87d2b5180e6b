package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	viodto "lifeline/internal/application/violation/dto"
	"lifeline/internal/application/violation/usecases"
	"lifeline/internal/domain/violation"
	violationvo "lifeline/internal/domain/violation/valueobjects"
	"lifeline/internal/interfaces/http/handlers/testutil"
	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockReportCaptureUC struct {
	result  *viodto.ReportResultDTO
	err     error
	lastCmd usecases.ReportCaptureCommand
}

func (m *mockReportCaptureUC) Execute(ctx context.Context, cmd usecases.ReportCaptureCommand) (*viodto.ReportResultDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetViolationStatusUC struct {
	result *viodto.ViolationStatusDTO
	err    error
}

func (m *mockGetViolationStatusUC) Execute(ctx context.Context, subscriberID uint) (*viodto.ViolationStatusDTO, error) {
	return m.result, m.err
}

type mockListViolationsUC struct {
	result []*violation.Record
	total  int64
	err    error
}

func (m *mockListViolationsUC) Execute(ctx context.Context, subscriberID uint, page, pageSize int) ([]*violation.Record, int64, error) {
	return m.result, m.total, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestRecord(t *testing.T) *violation.Record {
	t.Helper()
	kind, err := violationvo.NewCaptureKind("screenshot")
	require.NoError(t, err)
	rec, err := violation.NewRecord("vio_test123", 11, 22, "content-1", kind, time.Now().UTC())
	require.NoError(t, err)
	return rec
}

func newTestViolationHandler(
	reportUC reportCaptureUseCase,
	statusUC getViolationStatusUseCase,
	listUC listViolationsUseCase,
) *ViolationHandler {
	return NewViolationHandler(reportUC, statusUC, listUC, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestViolationHandler_ReportCapture_Success(t *testing.T) {
	rec := createTestRecord(t)
	mockUC := &mockReportCaptureUC{result: &viodto.ReportResultDTO{
		Record:   viodto.RecordToDTO(rec),
		Total:    1,
		Decision: "none",
	}}
	handler := newTestViolationHandler(mockUC, nil, nil)

	reqBody := ReportCaptureRequest{CreatorID: 22, ContentID: "content-1", Kind: "screenshot"}
	c, w := testutil.NewTestContext(http.MethodPost, "/captures", reqBody)
	testutil.SetAuthContext(c, 11, constants.RoleMember)

	handler.ReportCapture(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	// The subscriber is the authenticated caller, not a body field.
	assert.Equal(t, uint(11), mockUC.lastCmd.SubscriberID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"decision":"none"`)
}

func TestViolationHandler_ReportCapture_InvalidKind(t *testing.T) {
	handler := newTestViolationHandler(&mockReportCaptureUC{}, nil, nil)

	reqBody := map[string]interface{}{"creator_id": 22, "content_id": "content-1", "kind": "telepathy"}
	c, w := testutil.NewTestContext(http.MethodPost, "/captures", reqBody)
	testutil.SetAuthContext(c, 11, constants.RoleMember)

	handler.ReportCapture(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViolationHandler_ReportCapture_Unauthenticated(t *testing.T) {
	handler := newTestViolationHandler(&mockReportCaptureUC{}, nil, nil)

	reqBody := ReportCaptureRequest{CreatorID: 22, ContentID: "content-1", Kind: "screenshot"}
	c, w := testutil.NewTestContext(http.MethodPost, "/captures", reqBody)

	handler.ReportCapture(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViolationHandler_ReportCapture_StorageFailure(t *testing.T) {
	handler := newTestViolationHandler(&mockReportCaptureUC{err: errors.NewStorageError()}, nil, nil)

	reqBody := ReportCaptureRequest{CreatorID: 22, ContentID: "content-1", Kind: "screenshot"}
	c, w := testutil.NewTestContext(http.MethodPost, "/captures", reqBody)
	testutil.SetAuthContext(c, 11, constants.RoleMember)

	handler.ReportCapture(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestViolationHandler_GetOwnStatus(t *testing.T) {
	status := &viodto.ViolationStatusDTO{SubscriberID: 11, Total: 2, State: "warned"}
	handler := newTestViolationHandler(nil, &mockGetViolationStatusUC{result: status}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/violations/status", nil)
	testutil.SetAuthContext(c, 11, constants.RoleMember)

	handler.GetOwnStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"state":"warned"`)
}

func TestViolationHandler_GetSubscriberStatus_InvalidID(t *testing.T) {
	handler := newTestViolationHandler(nil, &mockGetViolationStatusUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/violations/abc/status", nil)
	testutil.SetURLParam(c, "subscriber_id", "abc")

	handler.GetSubscriberStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViolationHandler_ListViolations(t *testing.T) {
	rec := createTestRecord(t)
	handler := newTestViolationHandler(nil, nil, &mockListViolationsUC{result: []*violation.Record{rec}, total: 1})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/violations/11", nil)
	testutil.SetURLParam(c, "subscriber_id", "11")

	handler.ListViolations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "vio_test123")
	assert.Contains(t, string(resp.Data), `"total":1`)
}
