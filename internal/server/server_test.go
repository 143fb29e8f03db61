package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/chatrelay/internal/chat"
	"github.com/nfrund/chatrelay/internal/config"
	"github.com/nfrund/chatrelay/internal/storage"
)

type fixedCompleter struct {
	reply string
}

func (f *fixedCompleter) Complete(context.Context, []chat.Message) (string, error) {
	return f.reply, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "static/index.html", []byte("<html>frontend</html>"), 0644))

	cfg := &config.Config{
		Port:         "0",
		MaxTurns:     chat.DefaultMaxTurns,
		SystemPrompt: "test prompt",
	}

	s := NewWithDeps(cfg, chat.NewStore(cfg.SystemPrompt), &fixedCompleter{reply: "pong"}, storage.NewAssetStore(memFs, "static"))
	s.RegisterRoutes()
	return s
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("chat round trip", func(t *testing.T) {
		rec := do(s, http.MethodPost, "/api/chat", `{"chatId":"c1","message":"ping"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"reply":"pong"}`, rec.Body.String())

		rec = do(s, http.MethodGet, "/api/chats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"chatIds":["c1"]}`, rec.Body.String())

		rec = do(s, http.MethodDelete, "/api/chat/c1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

		rec = do(s, http.MethodDelete, "/api/chat/c1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("static frontend is the fallback route", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "frontend")
	})
}
