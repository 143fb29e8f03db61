package server

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/healthz", s.chatHandler.Health)

	api := s.E.Group("/api")
	api.GET("/chats", s.chatHandler.ListChats)
	api.POST("/chat", s.chatHandler.SendMessage)
	api.DELETE("/chat/:chatId", s.chatHandler.DeleteChat)

	// Everything else falls through to the bundled frontend.
	s.E.GET("/*", echo.WrapHandler(s.assets.Handler()))
}
