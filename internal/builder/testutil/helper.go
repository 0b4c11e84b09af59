package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

func SetupServer() *echo.Echo {
	e := echo.New()
	return e
}

// PerformRequest serves a JSON request through e. A string body is sent as is.
func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	switch b := body.(type) {
	case nil:
		bodyReader = strings.NewReader("")
	case string:
		bodyReader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		bodyReader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
