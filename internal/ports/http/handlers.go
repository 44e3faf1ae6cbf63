package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minpai/internal/app"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// aiDecision answers 200 with the decision document whether or not the
// decision succeeded; only a body that is not JSON is a 400.
func (s *Server) aiDecision(c *gin.Context) {
	var req app.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.controller.Decide(c.Request.Context(), req))
}

func (s *Server) aiReportMinpai(c *gin.Context) {
	var req app.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if req.OpponentHandCount < 0 {
		c.JSON(http.StatusBadRequest, errorBody{Error: "opponent_hand_count must not be negative"})
		return
	}
	c.JSON(http.StatusOK, s.controller.ReportMinpai(c.Request.Context(), req))
}
