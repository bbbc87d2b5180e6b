package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protdto "lifeline/internal/application/protection/dto"
	"lifeline/internal/application/protection/usecases"
	"lifeline/internal/domain/protection"
	"lifeline/internal/interfaces/http/handlers/testutil"
	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRequestAccessUC struct {
	result  *protdto.AccessGrantDTO
	err     error
	lastCmd usecases.RequestAccessCommand
}

func (m *mockRequestAccessUC) Execute(ctx context.Context, cmd usecases.RequestAccessCommand) (*protdto.AccessGrantDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListAccessLogUC struct {
	result []*protection.AccessEntry
	total  int64
	err    error
}

func (m *mockListAccessLogUC) Execute(ctx context.Context, contentID string, page, pageSize int) ([]*protection.AccessEntry, int64, error) {
	return m.result, m.total, m.err
}

// =====================================================================
// Tests
// =====================================================================

func TestProtectionHandler_RequestAccess_Granted(t *testing.T) {
	grant := &protdto.AccessGrantDTO{
		Granted:        true,
		ContentID:      "content-1",
		WatermarkSID:   "wm_test123",
		WatermarkToken: "token-abc123",
		WatermarkKind:  "forensic",
		GrantedAt:      time.Now().UTC(),
	}
	mockUC := &mockRequestAccessUC{result: grant}
	handler := NewProtectionHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/content/content-1/access", nil)
	testutil.SetURLParam(c, "content_id", "content-1")
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.RequestAccess(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.lastCmd.UserID)
	assert.Equal(t, "content-1", mockUC.lastCmd.ContentID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "token-abc123")
}

func TestProtectionHandler_RequestAccess_ConsentRequired(t *testing.T) {
	handler := NewProtectionHandler(&mockRequestAccessUC{err: errors.NewConsentRequiredError()}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/content/content-1/access", nil)
	testutil.SetURLParam(c, "content_id", "content-1")
	testutil.SetAuthContext(c, 7, constants.RoleMember)

	handler.RequestAccess(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "consent_required", resp.Error.Type)
}

func TestProtectionHandler_RequestAccess_Unauthenticated(t *testing.T) {
	handler := NewProtectionHandler(&mockRequestAccessUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/content/content-1/access", nil)
	testutil.SetURLParam(c, "content_id", "content-1")

	handler.RequestAccess(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectionHandler_ListAccessLog(t *testing.T) {
	entry, err := protection.NewAccessEntry("acc_test123", 7, "content-1", "wm_test123", time.Now().UTC())
	require.NoError(t, err)
	handler := NewProtectionHandler(nil, &mockListAccessLogUC{result: []*protection.AccessEntry{entry}, total: 1}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/content/content-1/access-log", nil)
	testutil.SetURLParam(c, "content_id", "content-1")

	handler.ListAccessLog(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "acc_test123")
}
