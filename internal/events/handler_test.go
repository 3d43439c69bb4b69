package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	httperr "github.com/horizon-lab/project-horizon/internal/core/errors"
	storagemocks "github.com/horizon-lab/project-horizon/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	return errResp
}

func TestHandlers_CreateUpdateScenario(t *testing.T) {
	f := newFixture(t, "Alice")
	r := newRouter(f.svc)

	resp := doJSON(t, r, http.MethodPost, "/events", `{
		"profiles": ["p-1"],
		"timezone": "America/New_York",
		"startDate": "2024-01-01T14:00:00Z",
		"endDate": "2024-01-01T15:00:00Z"
	}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created v1.EventView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Equal(t, "evt-1", created.ID)
	require.Equal(t, []v1.ProfileRef{{ID: "p-1", Name: "Alice"}}, created.Profiles)
	require.NotNil(t, created.Logs)
	require.Empty(t, created.Logs)

	resp = doJSON(t, r, http.MethodPut, "/events/evt-1", `{"timezone": "Europe/London"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated v1.EventView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Len(t, updated.Logs, 1)
	require.Equal(t, "Timezone changed to Europe/London", updated.Logs[0].Change)

	resp = doJSON(t, r, http.MethodPut, "/events/evt-1", `{"endDate": "2024-01-01T13:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	errResp := decodeError(t, resp)
	require.Equal(t, httperr.HttpInvalidRangeError, errResp.ErrorType)
	require.Equal(t, "End date must be after start date", errResp.Message)

	resp = doJSON(t, r, http.MethodGet, "/events/evt-1/logs", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var logs []v1.LogEntry
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
}

func TestHandlers_CreateValidationStatus(t *testing.T) {
	f := newFixture(t, "Alice")
	r := newRouter(f.svc)

	tests := []struct {
		name      string
		body      string
		wantType  string
		wantCode  int
		wantInMsg string
	}{
		{
			name:      "empty profiles",
			body:      `{"profiles": [], "timezone": "UTC", "startDate": "2024-01-01T14:00:00Z", "endDate": "2024-01-01T15:00:00Z"}`,
			wantType:  httperr.HttpMissingProfilesError,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "At least one profile",
		},
		{
			name:      "missing dates",
			body:      `{"profiles": ["p-1"], "timezone": "UTC"}`,
			wantType:  httperr.HttpMissingFieldsError,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "All fields are required",
		},
		{
			name:      "unknown profile",
			body:      `{"profiles": ["nope"], "timezone": "UTC", "startDate": "2024-01-01T14:00:00Z", "endDate": "2024-01-01T15:00:00Z"}`,
			wantType:  httperr.HttpUnknownProfileError,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "profiles not found",
		},
		{
			name:     "malformed date",
			body:     `{"profiles": ["p-1"], "timezone": "UTC", "startDate": "yesterday", "endDate": "2024-01-01T15:00:00Z"}`,
			wantType: httperr.HttpInvalidJsonError,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not json",
			body:     `not json`,
			wantType: httperr.HttpInvalidJsonError,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, r, http.MethodPost, "/events", tc.body)
			require.Equal(t, tc.wantCode, resp.Code, resp.Body.String())

			errResp := decodeError(t, resp)
			require.Equal(t, tc.wantType, errResp.ErrorType)
			if tc.wantInMsg != "" {
				require.Contains(t, errResp.Message, tc.wantInMsg)
			}
		})
	}
}

func TestHandlers_NotFound(t *testing.T) {
	f := newFixture(t, "Alice")
	r := newRouter(f.svc)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/events/missing", ""},
		{http.MethodGet, "/events/missing/logs", ""},
		{http.MethodPut, "/events/missing", `{"timezone": "UTC"}`},
	} {
		resp := doJSON(t, r, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusNotFound, resp.Code, tc.path)
		require.Equal(t, httperr.HttpNotFoundError, decodeError(t, resp).ErrorType)
	}
}

func TestHandlers_StorageErrorIsOpaque500(t *testing.T) {
	events := storagemocks.NewEventStore(t)
	profiles := storagemocks.NewProfileStore(t)
	events.EXPECT().ListEvents(mock.Anything).
		Return(nil, errors.New("pq: password authentication failed")).
		Once()

	r := newRouter(NewService(events, profiles, 1))
	resp := doJSON(t, r, http.MethodGet, "/events", "")

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	errResp := decodeError(t, resp)
	require.Equal(t, httperr.HttpInternalError, errResp.ErrorType)
	require.NotContains(t, errResp.Message, "password")
}

func TestHandlers_BodyTooLarge(t *testing.T) {
	f := newFixture(t, "Alice")
	r := newRouter(f.svc)

	big := `{"timezone": "` + strings.Repeat("x", 1024*1024) + `"}`
	resp := doJSON(t, r, http.MethodPost, "/events", big)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}

func TestHandlers_ListByProfile(t *testing.T) {
	f := newFixture(t, "Alice", "Bob")
	f.create(t, baseTime, baseTime.Add(time.Hour), "UTC", "Bob")
	r := newRouter(f.svc)

	resp := doJSON(t, r, http.MethodGet, "/events/profile/p-1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `[]`, resp.Body.String())

	resp = doJSON(t, r, http.MethodGet, "/events/profile/p-2", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var views []v1.EventView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &views))
	require.Len(t, views, 1)
	require.Equal(t, "Bob", views[0].Profiles[0].Name)
}
