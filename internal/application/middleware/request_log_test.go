package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	_ "go-weather/configs"
)

func TestSetupRequestID_SetsHeader(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	e.GET("/go-weather/favorites", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/go-weather/favorites", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	cases := map[string]bool{
		"/go-weather/health":             true,
		"/go-weather/swagger/index.html": true,
		"/go-weather/weather":            false,
		"/go-weather/favorites/Paris":    false,
	}

	for path, skip := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		require.Equal(t, skip, skipRequestLog(c), path)
	}
}
