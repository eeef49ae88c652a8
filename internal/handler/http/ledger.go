package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	BuildSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	PendingRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

// entryFilterFromQuery reads the view criteria off the query string.
// Page defaults to 1; out-of-range pages are the service's call.
func entryFilterFromQuery(r *http.Request) (ledger.EntryFilter, error) {
	filter := ledger.EntryFilter{
		Search:      r.URL.Query().Get("search"),
		Designation: r.URL.Query().Get("designation"),
		Status:      r.URL.Query().Get("status"),
		Page:        1,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return ledger.EntryFilter{}, fmt.Errorf("invalid page %q", pageStr)
		}
		filter.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return ledger.EntryFilter{}, fmt.Errorf("invalid limit %q", limitStr)
		}
		filter.PageSize = limit
	}

	return filter, nil
}

// BuildSession implements LedgerHandler.
func (h *ledgerHandlerImpl) BuildSession(w http.ResponseWriter, r *http.Request) {
	var req ledger.BuildSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode build session request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.BuildSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger session built", result)
}

// GetSession implements LedgerHandler.
func (h *ledgerHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.ledgerService.GetSession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSession implements LedgerHandler.
func (h *ledgerHandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.ledgerService.DeleteSession(r.Context(), sessionID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"id": sessionID})
}

// ListEntries implements LedgerHandler.
func (h *ledgerHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.ledgerService.ListEntries(r.Context(), sessionID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingRequests implements LedgerHandler.
func (h *ledgerHandlerImpl) PendingRequests(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.ledgerService.PendingRequests(r.Context(), sessionID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LedgerHandler.
func (h *ledgerHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req ledger.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode approve request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Approve(r.Context(), sessionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reject implements LedgerHandler.
func (h *ledgerHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req ledger.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode reject request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Reject(r.Context(), sessionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements LedgerHandler.
func (h *ledgerHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.ledgerService.Summary(r.Context(), sessionID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements LedgerHandler. On success the body is the CSV
// document itself, not the JSON envelope.
func (h *ledgerHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	doc, err := h.ledgerService.Export(r.Context(), sessionID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		slog.Error("Failed to write export body", "error", err)
	}
}
