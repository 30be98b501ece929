package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"krishimitra/internal/logging"
	"krishimitra/internal/session"
	"krishimitra/internal/store"
	"krishimitra/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ResolveRequest is the body of POST /v1/resolve.
type ResolveRequest struct {
	SessionID string `json:"session_id"`
	Utterance string `json:"utterance"`
	Language  string `json:"language"`
}

// ResolveResponse is the reply to POST /v1/resolve.
type ResolveResponse struct {
	SessionID string           `json:"session_id"`
	Language  types.Language   `json:"language"`
	Decisions []types.Decision `json:"decisions"`
	Reply     string           `json:"reply"`
	Redirect  string           `json:"redirect,omitempty"`
	Errors    []string         `json:"errors,omitempty"`
}

func (s *Server) handleResolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Utterance) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "utterance is required"})
		return
	}

	var lang types.Language
	if req.Language != "" {
		l, ok := types.LookupLanguage(req.Language)
		if ok {
			lang = l
		} else {
			logging.Get(logging.CategoryServer).Warn("Unknown language %q ignored", req.Language)
		}
	}
	if lang == "" && req.SessionID == "" {
		lang = s.opts.DefaultLanguage
	}

	turn, err := s.opts.Sessions.Handle(c.Request.Context(), req.SessionID, lang, req.Utterance)
	if err != nil {
		if errors.Is(err, session.ErrEmptyUtterance) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		logging.Get(logging.CategoryServer).Error("resolve failed for session %q: %v", req.SessionID, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := ResolveResponse{
		SessionID: turn.SessionID,
		Language:  turn.Language,
		Decisions: turn.Decisions,
		Reply:     turn.Reply,
		Redirect:  turn.Redirect,
	}
	for _, e := range turn.Errors {
		resp.Errors = append(resp.Errors, e.Error())
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListTasks(c *gin.Context) {
	opts := store.ListOptions{}
	if v := c.Query("all"); v != "" {
		all, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "all must be a boolean"})
			return
		}
		opts.IncludeCompleted = all
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		opts.Limit = n
	}

	tasks, err := s.opts.Store.ListTasks(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if tasks == nil {
		tasks = []types.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := s.opts.Store.ResolveTaskID(ctx, c.Param("id"))
	if err == nil {
		err = s.opts.Store.CompleteTask(ctx, id)
	}
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrAmbiguousID):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"id": id, "completed": true})
	}
}

func (s *Server) handleListSchemes(c *gin.Context) {
	schemes := s.opts.Catalog.All()
	if category := c.Query("category"); category != "" {
		filtered := schemes[:0]
		for _, sc := range schemes {
			if strings.EqualFold(sc.Category, category) {
				filtered = append(filtered, sc)
			}
		}
		schemes = filtered
	}
	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}

func (s *Server) handleGetScheme(c *gin.Context) {
	sc, ok := s.opts.Catalog.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "scheme not found"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// HealthResponse is the reply to GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Sessions int    `json:"sessions"`
	Schemes  int    `json:"schemes"`
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:   "ok",
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		Sessions: s.opts.Sessions.Len(),
		Schemes:  len(s.opts.Catalog.All()),
	}
	if err := s.opts.Store.Ping(); err != nil {
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
