package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"dashbuilder/internal/builder/dispatch"
	"dashbuilder/internal/builder/handler"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/router"
	"dashbuilder/internal/builder/service"
	"dashbuilder/internal/builder/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(svc *testutil.MockBuilderService) *echo.Echo {
	e := testutil.SetupServer()
	router.RegisterRoutes(e, handler.NewBuilderHandler(svc), nil, nil)
	return e
}

func decodeError(t *testing.T, body []byte) model.ErrorDetail {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	e := setup(new(testutil.MockBuilderService))
	rec := testutil.PerformRequest(e, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPostSession(t *testing.T) {
	apiPath := "/api/v1/sessions"

	t.Run("open session with trimmed system id and return 201", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		mockSvc.On("OpenSession", mock.Anything, model.UserContext{SystemID: "sys_1", IsAdmin: true}).
			Return(&model.SessionResponse{ID: "s1", User: model.UserContext{SystemID: "sys_1"}, CreatedAt: time.Now()}, nil)

		body := model.OpenSessionReq{User: model.UserContext{SystemID: "  sys_1  ", IsAdmin: true}}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

		var resp model.SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "s1", resp.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing system id and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, model.OpenSessionReq{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeError(t, rec.Body.Bytes()).Code)
		mockSvc.AssertNotCalled(t, "OpenSession", mock.Anything, mock.Anything)
	})

	t.Run("malformed body and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, `{"user":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteSession(t *testing.T) {
	t.Run("close session and return 200", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("CloseSession", mock.Anything, "s1").Return(nil)

		rec := testutil.PerformRequest(e, http.MethodDelete, "/api/v1/sessions/s1", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown session and return 404", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("CloseSession", mock.Anything, "gone").Return(service.ErrSessionNotFound)

		rec := testutil.PerformRequest(e, http.MethodDelete, "/api/v1/sessions/gone", nil, map[string]string{echo.HeaderXRequestID: "req-1"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		detail := decodeError(t, rec.Body.Bytes())
		assert.Equal(t, "session_not_found", detail.Code)
		assert.Equal(t, "req-1", detail.RequestID)
	})
}

func TestPostEvent(t *testing.T) {
	apiPath := "/api/v1/sessions/s1/events"

	t.Run("dispatch event and return 200", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Dispatch", mock.Anything, "s1", mock.MatchedBy(func(ev dispatch.Event) bool {
			return ev.Name == dispatch.SetAdmin && string(ev.Payload) == `{"value":true}`
		})).Return(nil)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, `{"name":" setAdmin ","payload":{"value":true}}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"payload": map[string]any{}}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid payload and return 400 with detail", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Dispatch", mock.Anything, "s1", mock.Anything).
			Return(&model.ErrorDetail{Code: "bad_request", Message: "invalid alignment: middle"})

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, dispatch.Event{Name: dispatch.AddImage}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid alignment: middle", decodeError(t, rec.Body.Bytes()).Message)
	})

	t.Run("unknown event and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Dispatch", mock.Anything, "s1", mock.Anything).Return(dispatch.ErrUnknownEvent)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, dispatch.Event{Name: "launchRocket"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unknown_event", decodeError(t, rec.Body.Bytes()).Code)
	})
}

func TestGetCellAndDerived(t *testing.T) {
	t.Run("read cell and return 200", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Snapshot", mock.Anything, "s1", "dashboard").Return(model.Dashboard{ID: "d1", Name: "ANC"}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/sessions/s1/cells/dashboard", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var d model.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, "ANC", d.Name)
	})

	t.Run("unknown derived value and return 404", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Derived", mock.Anything, "s1", "nope").Return(nil, service.ErrUnknownValue)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/sessions/s1/derived/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list events", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Events").Return([]string{"addSection", "setAdmin"})

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/events", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["addSection","setAdmin"]`, rec.Body.String())
	})
}

func TestDocuments(t *testing.T) {
	t.Run("create document and return 201", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Save", mock.Anything, "s1", model.SaveReq{Collection: model.CollectionDashboards, Mode: model.SaveModeCreate}).
			Return(model.Dashboard{ID: "d1"}, nil)

		body := map[string]string{"collection": "dashboards", "mode": "CREATE"}
		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/documents", body, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate save and return 409", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Save", mock.Anything, "s1", mock.Anything).Return(nil, service.ErrConflict)

		body := model.SaveReq{Collection: model.CollectionIndicators, Mode: model.SaveModeCreate}
		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/documents", body, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("visualization without id and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		body := model.SaveReq{Collection: model.CollectionVisualizations, Mode: model.SaveModeUpdate}
		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/documents", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("load collection and return count", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Load", mock.Anything, "s1", model.CollectionCategories).Return(3, nil)

		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/documents/categories/load", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"count":3}`, rec.Body.String())
	})

	t.Run("load unknown collection and return 400", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)

		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/documents/widgets/load", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete document and return 200", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Delete", mock.Anything, "s1", model.CollectionDataSources, "ds1").Return(nil)

		rec := testutil.PerformRequest(e, http.MethodDelete, "/api/v1/sessions/s1/documents/data-sources/ds1", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("store failure and return 500", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("Delete", mock.Anything, "s1", model.CollectionDashboards, "d1").Return(errors.New("connection reset"))

		rec := testutil.PerformRequest(e, http.MethodDelete, "/api/v1/sessions/s1/documents/dashboards/d1", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", decodeError(t, rec.Body.Bytes()).Code)
	})

	t.Run("duplicate dashboard and return 201", func(t *testing.T) {
		mockSvc := new(testutil.MockBuilderService)
		e := setup(mockSvc)
		mockSvc.On("DuplicateDashboard", mock.Anything, "s1", "d1").Return(&model.Dashboard{ID: "d2", Name: "ANC (copy)"}, nil)

		rec := testutil.PerformRequest(e, http.MethodPost, "/api/v1/sessions/s1/dashboards/d1/duplicate", nil, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}
