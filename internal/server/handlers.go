package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ethToolBox/internal/model"
	"ethToolBox/internal/session"
)

type dispatchRequest struct {
	Kind      string            `json:"kind" binding:"required"`
	Inputs    map[string]string `json:"inputs"`
	Signature string            `json:"signature"`
	Args      []string          `json:"args"`
}

type evalRequest struct {
	Command string `json:"command" binding:"required"`
}

type entriesResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Warning string           `json:"warning,omitempty"`
}

type kindInfo struct {
	Kind   model.Kind      `json:"kind"`
	Fields []session.Field `json:"fields"`
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"session": s.session.ID(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) kindsHandler(c *gin.Context) {
	kinds := model.Kinds()
	out := make([]kindInfo, 0, len(kinds))
	for _, kind := range kinds {
		fields := session.Operands(kind)
		if fields == nil {
			fields = []session.Field{}
		}
		out = append(out, kindInfo{Kind: kind, Fields: fields})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) logHandler(c *gin.Context) {
	entries := s.session.Entries()
	if raw := c.Query("since"); raw != "" {
		since, err := strconv.Atoi(raw)
		if err != nil || since < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be a non-negative integer"})
			return
		}
		if since >= len(entries) {
			entries = nil
		} else {
			entries = entries[since:]
		}
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	c.JSON(http.StatusOK, entriesResponse{Entries: entries})
}

func (s *Server) dispatchHandler(c *gin.Context) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := s.session.Call(c.Request.Context(), kind, req.Inputs, req.Signature, req.Args)
	if added == nil && err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respondEntries(c, added, err)
}

func (s *Server) convertHandler(c *gin.Context) {
	var req model.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := model.ParseKind(string(req.Kind))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Kind = kind

	line, err := s.session.Convert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"line": line})
}

func (s *Server) evalHandler(c *gin.Context) {
	var req evalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := s.session.Eval(c.Request.Context(), req.Command)
	s.respondEntries(c, added, err)
}

// respondEntries reports appended entries. A transcript failure does not
// undo the entries, so it is returned as a warning.
func (s *Server) respondEntries(c *gin.Context, added []model.LogEntry, sinkErr error) {
	if added == nil {
		added = []model.LogEntry{}
	}
	resp := entriesResponse{Entries: added}
	if sinkErr != nil {
		s.logger.Warn("transcript write failed", zap.Error(sinkErr))
		resp.Warning = sinkErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}
