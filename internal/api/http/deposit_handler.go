package http

import (
	"fmt"
	"net/http"

	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// DepositHandler maps the deposit routes onto the deposit service.
type DepositHandler struct {
	depositSvc service.DepositService
}

func NewDepositHandler(depositSvc service.DepositService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

func (h *DepositHandler) Register(router *mux.Router) {
	router.HandleFunc("/accounts/{accountId}/deposits", h.ListDepositsForAccount).Methods("GET")
	router.HandleFunc("/accounts/{accountId}/deposits", h.CreateDeposit).Methods("POST")
	router.HandleFunc("/deposits/{depositId}", h.GetDeposit).Methods("GET")
	router.HandleFunc("/deposits/{depositId}", h.UpdateDeposit).Methods("PUT")
	router.HandleFunc("/deposits/{depositId}", h.DeleteDeposit).Methods("DELETE")
	router.HandleFunc("/deposits/process/{depositId}", h.ProcessDeposit).Methods("PUT")
}

func (h *DepositHandler) ListDepositsForAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	deposits, err := h.depositSvc.GetDepositsForAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("All Deposits with accountId (%d) retrieved successfully.", accountID), deposits)
}

func (h *DepositHandler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := pathID(r, "depositId")
	if err != nil {
		writeError(w, err)
		return
	}

	deposit, err := h.depositSvc.GetDeposit(r.Context(), depositID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Deposit with Id (%d) retrieved successfully.", depositID), []domain.Deposit{*deposit})
}

func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req domain.DepositCreationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.depositSvc.CreateDeposit(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated,
		"Created the deposit and added it to the account", []domain.Deposit{*created})
}

func (h *DepositHandler) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := pathID(r, "depositId")
	if err != nil {
		writeError(w, err)
		return
	}

	var deposit domain.Deposit
	if err := decodeJSON(r, &deposit); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.depositSvc.UpdateDeposit(r.Context(), depositID, &deposit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Accepted Deposit modification for deposit with Id (%d).", depositID), []domain.Deposit{*updated})
}

func (h *DepositHandler) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := pathID(r, "depositId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.depositSvc.DeleteDeposit(r.Context(), depositID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DepositHandler) ProcessDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := pathID(r, "depositId")
	if err != nil {
		writeError(w, err)
		return
	}

	processed, err := h.depositSvc.ProcessDeposit(r.Context(), depositID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Processed Deposit with Id (%d).", depositID), []domain.Deposit{*processed})
}
