package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nahidff/likebot/internal/api/apierr"
	"github.com/nahidff/likebot/internal/api/request"
	"github.com/nahidff/likebot/internal/api/response"
	"github.com/nahidff/likebot/internal/bot"
	"github.com/nahidff/likebot/internal/model"
)

// CommandHandler handles the command and callback endpoints: the boundary
// where the chat transport hands requests to the bot core
type CommandHandler struct {
	router *bot.Router
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(router *bot.Router) *CommandHandler {
	return &CommandHandler{
		router: router,
	}
}

// Dispatch handles POST /api/v1/commands
func (h *CommandHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req request.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.UserID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("user_id is required"))
		return
	}
	if req.Command == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("command is required"))
		return
	}

	reply, err := h.router.HandleCommand(r.Context(), model.UserID(req.UserID), req.Command, req.Args)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReplyFromBot(reply))
}

// Callback handles POST /api/v1/callbacks
func (h *CommandHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req request.CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.UserID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("user_id is required"))
		return
	}
	if req.Data == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("data is required"))
		return
	}

	reply, err := h.router.HandleCallback(r.Context(), model.UserID(req.UserID), req.Data)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReplyFromBot(reply))
}
