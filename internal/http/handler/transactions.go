package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txmerge/internal/address"
	"txmerge/internal/core"
	"txmerge/internal/http/handler/middleware"
	"txmerge/internal/http/payload"

	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var (
	PostPending         = "POST /pending"
	RefreshTransaction  = "POST /transactions/{hash}/refresh"
	RefreshTransactions = "POST /transactions/refresh"
	GetTransaction      = "GET /transactions/{hash}"
	ValidateAddress     = "GET /addresses/{address}"
)

type TransactionHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          TransactionService
	addressRule      address.Rule
	coin             core.Coin
}

// NewTransactionHandler is a constructor function for the TransactionHandler type.
// coin is used for transactions refreshed from the node.
func NewTransactionHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	transactionService TransactionService,
	addressRule address.Rule,
	coin core.Coin,
) *TransactionHandler {
	return &TransactionHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          transactionService,
		addressRule:      addressRule,
		coin:             coin,
	}
}

func (h *TransactionHandler) HandlePostPending(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pendingRequest payload.PendingRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &pendingRequest); err != nil {
		h.respond(w, Response{
			Message: "Could not merge pending transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", PostPending,
			"request_id", requestId)
		return
	}

	tx, err := h.service.UpdatePending(r.Context(), pendingRequest.Transaction, pendingRequest.ToCoreCoin())
	if err != nil {
		h.respondServiceError(w, "Could not merge pending transaction", err, PostPending, requestId)
		return
	}

	h.respond(w, map[string]core.Transaction{
		"transaction": tx,
	}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleRefreshTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	hash := r.PathValue("hash")
	if err := payload.ValidateHash(hash); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate transaction hash: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid transaction hash",
			"hash", hash,
			"error", err,
			"handler", RefreshTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("refresh request received",
		"hash", hash,
		"handler", RefreshTransaction,
		"request_id", requestId)

	tx, err := h.service.Refresh(r.Context(), hash, h.coin)
	if err != nil {
		h.respondServiceError(w, "Could not refresh transaction", err, RefreshTransaction, requestId)
		return
	}

	h.respond(w, map[string]core.Transaction{
		"transaction": tx,
	}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleRefreshTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var refreshRequest payload.RefreshRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &refreshRequest); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RefreshTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.service.RefreshAll(r.Context(), refreshRequest.Hashes, h.coin)
	if err != nil && len(transactions) == 0 {
		h.respondServiceError(w, "Could not refresh transactions", err, RefreshTransactions, requestId)
		return
	}

	resp := Response{
		Data: transactions,
	}
	if err != nil {
		resp.Message = "Some transactions could not be refreshed"
		resp.Error = err.Error()
		h.logs.Warnw("partial refresh",
			"error", err,
			"refreshed", len(transactions),
			"requested", len(refreshRequest.Hashes),
			"handler", RefreshTransactions,
			"request_id", requestId)
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	hash := r.PathValue("hash")
	if hash == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "transaction hash is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	tx, err := h.service.GetTransaction(r.Context(), hash)
	if err != nil {
		h.respondServiceError(w, "Could not retrieve transaction", err, GetTransaction, requestId)
		return
	}

	h.respond(w, map[string]core.Transaction{
		"transaction": tx,
	}, http.StatusOK, requestId)
}

type addressResponse struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

func (h *TransactionHandler) HandleValidateAddress(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	candidate := r.PathValue("address")
	resp := addressResponse{
		Address: candidate,
		Valid:   true,
	}

	if err := payload.NewAddressRequest(candidate, h.addressRule).Validate(); err != nil {
		resp.Valid = false
		resp.Error = fieldError(err, "address").Error()
	} else if addr, err := address.Parse(candidate); err == nil {
		resp.Address = address.Display(addr)
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

// fieldError returns the error reported for field, or err itself when the
// failure is not a per-field one.
func fieldError(err error, field string) error {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		if fe, ok := fieldErrs[field]; ok && fe != nil {
			return fe
		}
	}
	return err
}

func (h *TransactionHandler) respondServiceError(w http.ResponseWriter, message string, err error, route string, requestId string) {
	resp := Response{
		Message: message,
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrTransactionNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrInvalidSender):
		httpCode = http.StatusUnprocessableEntity
		resp.Error = err.Error()
	case errors.Is(err, core.ErrMissingHash):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("transaction request failed",
		"error", err,
		"status", httpCode,
		"handler", route,
		"request_id", requestId)
}

func (h *TransactionHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
