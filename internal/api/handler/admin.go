package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nahidff/likebot/internal/api/apierr"
	"github.com/nahidff/likebot/internal/api/request"
	"github.com/nahidff/likebot/internal/api/response"
	"github.com/nahidff/likebot/internal/model"
	"github.com/nahidff/likebot/internal/services/account"
)

// AdminHandler handles the administrative account endpoints. This is how
// the externally-managed pieces of an account (the VIP flag, out-of-band
// coin grants) get set: the bot commands themselves never touch them.
type AdminHandler struct {
	accounts *account.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accounts *account.Service) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
	}
}

// GetAccount handles GET /api/v1/admin/accounts/{id}
func (h *AdminHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	acct, err := h.accounts.GetOrCreate(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(acct))
}

// SetVIP handles PUT /api/v1/admin/accounts/{id}/vip
func (h *AdminHandler) SetVIP(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	var req request.SetVIPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	acct, err := h.accounts.SetVIP(r.Context(), id, req.VIP)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(acct))
}

// Credit handles POST /api/v1/admin/accounts/{id}/credit
func (h *AdminHandler) Credit(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	var req request.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Amount <= 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("amount must be positive"))
		return
	}

	acct, err := h.accounts.Credit(r.Context(), id, req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(acct))
}
