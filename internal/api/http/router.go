package http

import (
	"banking-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter assembles the full HTTP API.
func NewRouter(
	billSvc service.BillService,
	accountSvc service.AccountService,
	depositSvc service.DepositService,
	withdrawalSvc service.WithdrawalService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging)

	NewBillHandler(billSvc).Register(router)
	NewAccountHandler(accountSvc).Register(router)
	NewDepositHandler(depositSvc).Register(router)
	NewWithdrawalHandler(withdrawalSvc).Register(router)

	return router
}
