package http

import (
	"github.com/gin-gonic/gin"
)

// Server binds the facade router to a listening address. Engine stays
// exported so tests drive routes through httptest instead of a socket.
type Server struct {
	Engine *gin.Engine
	addr   string
}

func NewServer(cfg RouterConfig, port string) *Server {
	return &Server{
		Engine: NewRouter(cfg),
		addr:   ":" + port,
	}
}

func (s *Server) Run() error {
	return s.Engine.Run(s.addr)
}
