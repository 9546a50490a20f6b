// Package mockserver runs the local audio storage API on an httptest server
// for exercising the scenario end to end.
package mockserver

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"audiocheck/internal/handler"
	"audiocheck/internal/repository"
	"audiocheck/internal/router"
	"audiocheck/pkg/response"

	"github.com/gin-gonic/gin"
)

// Server holds the running API and its in-memory repository.
type Server struct {
	*httptest.Server

	// Repo gives direct access to stored uploads.
	Repo repository.AudioRepository

	mu          sync.Mutex
	requests    []string
	failUploads bool
}

// New starts a server. Call Close when done.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{Repo: repository.NewMemoryAudioRepository()}
	r := router.Setup(&router.Config{
		AudioHandler: handler.NewAudioHandler(s.Repo),
		Middleware:   []gin.HandlerFunc{s.record},
	})
	s.Server = httptest.NewServer(r)
	return s
}

// Requests returns "METHOD path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// SetFailUploads makes every upload answer 500 until reset.
func (s *Server) SetFailUploads(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failUploads = fail
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
	fail := s.failUploads
	s.mu.Unlock()

	if fail && c.Request.Method == http.MethodPost {
		response.InternalError(c, "Audio conversion failed")
		c.Abort()
		return
	}
	c.Next()
}
