package http

import (
	"fmt"
	"net/http"

	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// WithdrawalHandler maps the withdrawal routes onto the withdrawal service.
type WithdrawalHandler struct {
	withdrawalSvc service.WithdrawalService
}

func NewWithdrawalHandler(withdrawalSvc service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

func (h *WithdrawalHandler) Register(router *mux.Router) {
	router.HandleFunc("/accounts/{accountId}/withdrawals", h.ListWithdrawalsForAccount).Methods("GET")
	router.HandleFunc("/accounts/{accountId}/withdrawals", h.CreateWithdrawal).Methods("POST")
	router.HandleFunc("/withdrawals/{withdrawalId}", h.GetWithdrawal).Methods("GET")
	router.HandleFunc("/withdrawals/{withdrawalId}", h.UpdateWithdrawal).Methods("PUT")
	router.HandleFunc("/withdrawals/{withdrawalId}", h.DeleteWithdrawal).Methods("DELETE")
	router.HandleFunc("/withdrawals/process/{withdrawalId}", h.ProcessWithdrawal).Methods("PUT")
}

func (h *WithdrawalHandler) ListWithdrawalsForAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	withdrawals, err := h.withdrawalSvc.GetWithdrawalsForAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("All Withdrawals with accountId (%d) retrieved successfully.", accountID), withdrawals)
}

func (h *WithdrawalHandler) GetWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := pathID(r, "withdrawalId")
	if err != nil {
		writeError(w, err)
		return
	}

	withdrawal, err := h.withdrawalSvc.GetWithdrawal(r.Context(), withdrawalID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Withdrawal with Id (%d) retrieved successfully.", withdrawalID), []domain.Withdrawal{*withdrawal})
}

func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req domain.WithdrawalCreationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.withdrawalSvc.CreateWithdrawal(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated,
		"Created the withdrawal and added it to the account", []domain.Withdrawal{*created})
}

func (h *WithdrawalHandler) UpdateWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := pathID(r, "withdrawalId")
	if err != nil {
		writeError(w, err)
		return
	}

	var withdrawal domain.Withdrawal
	if err := decodeJSON(r, &withdrawal); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.withdrawalSvc.UpdateWithdrawal(r.Context(), withdrawalID, &withdrawal)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Accepted Withdrawal modification for withdrawal with Id (%d).", withdrawalID), []domain.Withdrawal{*updated})
}

func (h *WithdrawalHandler) DeleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := pathID(r, "withdrawalId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.withdrawalSvc.DeleteWithdrawal(r.Context(), withdrawalID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WithdrawalHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := pathID(r, "withdrawalId")
	if err != nil {
		writeError(w, err)
		return
	}

	processed, err := h.withdrawalSvc.ProcessWithdrawal(r.Context(), withdrawalID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Processed Withdrawal with Id (%d).", withdrawalID), []domain.Withdrawal{*processed})
}
