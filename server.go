package main // import "github.com/tonobo/snake-autopilot"

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Server struct {
	debug  bool
	logDir string
}

func NewServer(debug bool, logDir string) *Server {
	return &Server{debug: debug, logDir: logDir}
}

func (s *Server) Register(r gin.IRoutes) {
	r.POST("/start", s.start)
	r.POST("/end", s.end)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.POST("/move", s.move)
	r.POST("/path", s.path)
}

type pathResponse struct {
	Path     Path `json:"path"`
	Fallback bool `json:"fallback"`
	Closed   int  `json:"closed"`
}

func newPathResponse(r *Route) pathResponse {
	return pathResponse{Path: r.Steps, Fallback: r.Fallback, Closed: r.Closed}
}

// bind decodes and validates the snapshot. It writes the error response
// itself and returns nil in that case.
func (s *Server) bind(c *gin.Context) *Request {
	var j Request
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	if err := j.Init(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	j.Board.debug = s.debug
	j.Board.logDir = s.logDir
	return &j
}

func searchError(c *gin.Context, err error) {
	if errors.Is(err, ErrNoMove) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) start(c *gin.Context) {
	j := s.bind(c)
	if j == nil {
		return
	}
	defer j.Board.Close()
	fmt.Fprintf(j.Board.LogFile(), "Starting game: %s\n", j.Board.GameID)
	c.JSON(http.StatusOK, gin.H{"color": Color})
}

func (s *Server) end(c *gin.Context) {
	j := s.bind(c)
	if j == nil {
		return
	}
	defer j.Board.Close()
	body, err := json.Marshal(j)
	if err != nil {
		fmt.Fprintf(j.Board.LogFile(), "End game: %s: marshal request: %v\n", j.Board.GameID, err)
	} else {
		fmt.Fprintf(j.Board.LogFile(), "End game: %s %s\n", j.Board.GameID, body)
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) move(c *gin.Context) {
	j := s.bind(c)
	if j == nil {
		return
	}
	defer j.Board.Close()
	direction, err := j.Board.Move(j.Route())
	if err != nil {
		searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"move": direction})
}

func (s *Server) path(c *gin.Context) {
	j := s.bind(c)
	if j == nil {
		return
	}
	defer j.Board.Close()
	route := j.Route()
	if err := route.Resolve(); err != nil {
		searchError(c, err)
		return
	}
	route.Print()
	PrintGrid(j.Board.LogFile(), j.Board, route.Steps)
	c.JSON(http.StatusOK, newPathResponse(route))
}
