package http

import (
	"fmt"
	"net/http"

	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// AccountHandler maps the account routes onto the account service.
type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (h *AccountHandler) Register(router *mux.Router) {
	router.HandleFunc("/accounts", h.ListAccounts).Methods("GET")
	router.HandleFunc("/accounts/{customerId}", h.CreateAccount).Methods("POST")
	router.HandleFunc("/accounts/{accountId}", h.GetAccount).Methods("GET")
	router.HandleFunc("/accounts/{accountId}", h.UpdateAccount).Methods("PUT")
	router.HandleFunc("/accounts/{accountId}", h.DeleteAccount).Methods("DELETE")
	router.HandleFunc("/customers/{customerId}/accounts", h.ListAccountsForCustomer).Methods("GET")
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountSvc.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, "All Accounts retrieved successfully.", accounts)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	account, err := h.accountSvc.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Account with Id (%d) retrieved successfully.", accountID), []domain.Account{*account})
}

func (h *AccountHandler) ListAccountsForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, err)
		return
	}

	accounts, err := h.accountSvc.ListAccountsForCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("All Accounts belonging to Customer with Id (%d) retrieved successfully.", customerID), accounts)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, err)
		return
	}

	var account domain.Account
	if err := decodeJSON(r, &account); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.accountSvc.CreateAccount(r.Context(), customerID, &account)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated,
		"Created the account and added it to the customer", []domain.Account{*created})
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	var account domain.Account
	if err := decodeJSON(r, &account); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.accountSvc.UpdateAccount(r.Context(), accountID, &account)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Accepted Account modification for account with Id (%d).", accountID), []domain.Account{*updated})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.accountSvc.DeleteAccount(r.Context(), accountID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
