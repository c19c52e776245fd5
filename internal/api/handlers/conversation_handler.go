package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/parleyhq/parley/internal/models"
	"github.com/parleyhq/parley/internal/services"
	"github.com/parleyhq/parley/internal/utils"
)

const (
	defaultHistoryLimit  = 5
	defaultHistoryOffset = 0
)

type ConversationHandler struct {
	svc services.ConversationService
}

func NewConversationHandler(svc services.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	Reply string `json:"reply"`
}

// Generate handles POST /generate. A missing prompt field is an empty prompt,
// not an error; leading and trailing whitespace is stripped before the prompt
// reaches the provider or the store.
func (h *ConversationHandler) Generate(c *gin.Context) {
	const op = "ConversationHandler.Generate"

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "request body must be valid JSON", err))
		return
	}

	prompt := strings.TrimSpace(req.Prompt)

	rec, err := h.svc.Generate(c.Request.Context(), prompt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Reply: rec.Response})
}

// History handles GET /history. limit defaults to 5, offset to 0; a value
// that does not parse as an integer is rejected before the store is touched.
func (h *ConversationHandler) History(c *gin.Context) {
	const op = "ConversationHandler.History"

	limit := defaultHistoryLimit
	offset := defaultHistoryOffset

	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "limit/offset must be integers", err))
			return
		}
		limit = n
	}
	if s := c.Query("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "limit/offset must be integers", err))
			return
		}
		offset = n
	}

	rows, err := h.svc.History(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	if rows == nil {
		rows = []models.ConversationRecord{}
	}
	c.JSON(http.StatusOK, rows)
}
