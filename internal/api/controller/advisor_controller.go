package controller

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/api/response"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/service"
	"ctchen222/Tic-Tac-Toe-AI/pkg/proto"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdvisorController handles the move-advice HTTP requests.
type AdvisorController struct {
	advisor service.AdvisorService
	results service.ResultsService
}

// NewAdvisorController creates a new AdvisorController.
func NewAdvisorController(advisor service.AdvisorService, results service.ResultsService) *AdvisorController {
	return &AdvisorController{
		advisor: advisor,
		results: results,
	}
}

// SuggestMove handles POST /v1/moves.
func (ac *AdvisorController) SuggestMove(c *gin.Context) {
	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := ac.advisor.SuggestMove(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, resp)
}

// Evaluate handles POST /v1/evaluate.
func (ac *AdvisorController) Evaluate(c *gin.Context) {
	var req proto.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := ac.advisor.Evaluate(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, resp)
}

// Results handles GET /v1/results?limit=n.
func (ac *AdvisorController) Results(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.ErrorResponse(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	list, err := ac.results.Recent(c.Request.Context(), limit)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	response.SuccessResponseList(c, list)
}

// Health handles GET /healthz.
func (ac *AdvisorController) Health(c *gin.Context) {
	response.SuccessResponse(c, gin.H{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotAITurn), errors.Is(err, service.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, service.ErrLedgerDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
