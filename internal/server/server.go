package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/nfrund/chatrelay/internal/chat"
	"github.com/nfrund/chatrelay/internal/config"
	"github.com/nfrund/chatrelay/internal/handlers"
	"github.com/nfrund/chatrelay/internal/logging"
	"github.com/nfrund/chatrelay/internal/middleware"
	"github.com/nfrund/chatrelay/internal/storage"
	"github.com/nfrund/chatrelay/internal/upstream"
	"github.com/nfrund/chatrelay/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	store       *chat.Store
	chatHandler *handlers.ChatHandler
	assets      *storage.AssetStore
}

// New creates a fully wired Server from process configuration. The upstream
// client is constructed here, once, so a bad credential fails at startup
// instead of on the first request.
func New() *Server {
	logging.New()
	cfg := config.New()

	return NewWithDeps(cfg, chat.NewStore(cfg.SystemPrompt), upstream.NewClient(cfg), newAssetStore(cfg))
}

// NewWithDeps wires a Server from explicit dependencies. Tests use it to
// inject an isolated store, a stubbed completer, and an in-memory asset store.
func NewWithDeps(cfg *config.Config, store *chat.Store, completer upstream.Completer, assets *storage.AssetStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Validator = handlers.NewValidator()

	return &Server{
		E:           e,
		Cfg:         cfg,
		store:       store,
		chatHandler: handlers.NewChatHandler(store, completer, cfg.MaxTurns),
		assets:      assets,
	}
}

// newAssetStore picks the frontend source: a directory on disk when
// STATIC_DIR is set, otherwise the bundle embedded in the binary.
func newAssetStore(cfg *config.Config) *storage.AssetStore {
	if cfg.StaticDir != "" {
		return storage.NewAssetStore(afero.NewOsFs(), cfg.StaticDir)
	}
	return storage.NewAssetStore(afero.FromIOFS{FS: web.FS}, "static")
}

// Store is a getter for the server's chat store, useful for testing.
func (s *Server) Store() *chat.Store {
	return s.store
}
