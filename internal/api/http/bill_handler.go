package http

import (
	"fmt"
	"net/http"

	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// BillHandler maps the bill routes onto the bill lifecycle service.
type BillHandler struct {
	billSvc service.BillService
}

func NewBillHandler(billSvc service.BillService) *BillHandler {
	return &BillHandler{billSvc: billSvc}
}

func (h *BillHandler) Register(router *mux.Router) {
	router.HandleFunc("/accounts/{accountId}/bills", h.GetBillsForAccount).Methods("GET")
	router.HandleFunc("/accounts/{accountId}/bills", h.CreateBill).Methods("POST")
	router.HandleFunc("/customers/{customerId}/bills", h.GetBillsForCustomer).Methods("GET")
	router.HandleFunc("/bills/{billId}", h.GetBill).Methods("GET")
	router.HandleFunc("/bills/{billId}", h.UpdateBill).Methods("PUT")
	router.HandleFunc("/bills/{billId}", h.DeleteBill).Methods("DELETE")
}

func (h *BillHandler) GetBillsForAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	bills, err := h.billSvc.GetBillsForAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("All Bills with accountId (%d) retrieved successfully.", accountID), bills)
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	billID, err := pathID(r, "billId")
	if err != nil {
		writeError(w, err)
		return
	}

	bill, err := h.billSvc.GetBill(r.Context(), billID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Bill with Id (%d) retrieved successfully.", billID), []domain.Bill{*bill})
}

func (h *BillHandler) GetBillsForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, err)
		return
	}

	bills, err := h.billSvc.GetBillsForCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("All Bills belonging to Customer with Id (%d) retrieved successfully.", customerID), bills)
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req domain.BillCreationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bill, err := h.billSvc.CreateBill(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated,
		"Created the bill and added it to the account", []domain.Bill{*bill})
}

func (h *BillHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID, err := pathID(r, "billId")
	if err != nil {
		writeError(w, err)
		return
	}

	var updated domain.Bill
	if err := decodeJSON(r, &updated); err != nil {
		writeError(w, err)
		return
	}

	bill, err := h.billSvc.UpdateBill(r.Context(), billID, &updated)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK,
		fmt.Sprintf("Accepted Bill modification for bill with Id (%d).", billID), []domain.Bill{*bill})
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID, err := pathID(r, "billId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.billSvc.DeleteBill(r.Context(), billID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
