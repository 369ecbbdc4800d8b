package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "banking-backoffice/internal/api/http"
	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBillService
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) GetBillsForAccount(ctx context.Context, accountID int64) ([]domain.Bill, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillService) GetBill(ctx context.Context, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillService) GetBillsForCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillService) CreateBill(ctx context.Context, accountID int64, req *domain.BillCreationRequest) (*domain.Bill, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillService) UpdateBill(ctx context.Context, billID int64, updated *domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, billID, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillService) DeleteBill(ctx context.Context, billID int64) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newBillRouter(svc *MockBillService) *mux.Router {
	router := mux.NewRouter()
	httpapi.NewBillHandler(svc).Register(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestBillHandler_GetBillsForAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("GetBillsForAccount", mock.Anything, int64(2)).Return([]domain.Bill{
			{ID: 1, Status: domain.BillStatusPending, Payee: "Electric Company", Nickname: "electric", AccountID: 2},
		}, nil)

		rec, env := doRequest(t, newBillRouter(svc), "GET", "/accounts/2/bills", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, http.StatusOK, env.Code)
		assert.Equal(t, "All Bills with accountId (2) retrieved successfully.", env.Message)

		var bills []domain.Bill
		assert.NoError(t, json.Unmarshal(env.Data, &bills))
		assert.Len(t, bills, 1)
	})

	t.Run("AccountNotFound", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("GetBillsForAccount", mock.Anything, int64(99)).
			Return(nil, apperr.NotFoundf("Account with Id (%d) not found.", 99))

		rec, env := doRequest(t, newBillRouter(svc), "GET", "/accounts/99/bills", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Account with Id (99) not found.", env.Message)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		svc := new(MockBillService)

		rec, env := doRequest(t, newBillRouter(svc), "GET", "/accounts/abc/bills", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid accountId (abc).", env.Message)
		svc.AssertNotCalled(t, "GetBillsForAccount", mock.Anything, mock.Anything)
	})
}

func TestBillHandler_GetBill(t *testing.T) {
	svc := new(MockBillService)
	svc.On("GetBill", mock.Anything, int64(7)).Return(&domain.Bill{
		ID: 7, Status: domain.BillStatusPending, Payee: "Electric Company", Nickname: "electric", AccountID: 2,
	}, nil)

	rec, env := doRequest(t, newBillRouter(svc), "GET", "/bills/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bill with Id (7) retrieved successfully.", env.Message)

	// Single-resource reads still wrap the bill in a list.
	var bills []domain.Bill
	assert.NoError(t, json.Unmarshal(env.Data, &bills))
	assert.Len(t, bills, 1)
	assert.Equal(t, int64(7), bills[0].ID)
}

func TestBillHandler_CreateBill(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("CreateBill", mock.Anything, int64(2), mock.AnythingOfType("*domain.BillCreationRequest")).
			Return(&domain.Bill{ID: 7, Status: domain.BillStatusPending, Payee: "Electric Company", Nickname: "electric", AccountID: 2}, nil)

		body := `{"status":"PENDING","payee":"Electric Company","nickname":"electric","payment_amount":150.25,"account_id":2}`
		rec, env := doRequest(t, newBillRouter(svc), "POST", "/accounts/2/bills", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, http.StatusCreated, env.Code)
		assert.Equal(t, "Created the bill and added it to the account", env.Message)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		svc := new(MockBillService)

		rec, _ := doRequest(t, newBillRouter(svc), "POST", "/accounts/2/bills", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		svc := new(MockBillService)

		rec, _ := doRequest(t, newBillRouter(svc), "POST", "/accounts/2/bills", `{"status":"PENDING"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ConflictFromService", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("CreateBill", mock.Anything, int64(2), mock.AnythingOfType("*domain.BillCreationRequest")).
			Return(nil, apperr.Conflictf("AccountId must match BillCreation Request's accountId."))

		body := `{"status":"PENDING","payee":"Electric Company","nickname":"electric","payment_amount":150.25,"account_id":3}`
		rec, env := doRequest(t, newBillRouter(svc), "POST", "/accounts/2/bills", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "AccountId must match BillCreation Request's accountId.", env.Message)
	})
}

func TestBillHandler_UpdateBill(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("UpdateBill", mock.Anything, int64(7), mock.AnythingOfType("*domain.Bill")).
			Return(&domain.Bill{ID: 7, Status: domain.BillStatusCanceled, Payee: "Electric Company", Nickname: "electric", AccountID: 2}, nil)

		body := `{"id":7,"status":"CANCELED","payee":"Electric Company","nickname":"electric","creation_date":"2024-01-10","payment_date":"Awaiting payment.","payment_amount":150.25,"account_id":2}`
		rec, env := doRequest(t, newBillRouter(svc), "PUT", "/bills/7", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Accepted Bill modification for bill with Id (7).", env.Message)
	})

	t.Run("TerminalStatusRejected", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("UpdateBill", mock.Anything, int64(7), mock.AnythingOfType("*domain.Bill")).
			Return(nil, apperr.InvalidInputf("Can not update bill with status (PENDING)."))

		body := `{"id":7,"status":"PENDING","payee":"Electric Company","nickname":"electric","creation_date":"2024-01-10","payment_date":"Awaiting payment.","payment_amount":150.25,"account_id":2}`
		rec, env := doRequest(t, newBillRouter(svc), "PUT", "/bills/7", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Can not update bill with status (PENDING).", env.Message)
	})
}

func TestBillHandler_DeleteBill(t *testing.T) {
	t.Run("NoContent", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("DeleteBill", mock.Anything, int64(7)).Return(nil)

		rec, _ := doRequest(t, newBillRouter(svc), "DELETE", "/bills/7", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockBillService)
		svc.On("DeleteBill", mock.Anything, int64(404)).
			Return(apperr.NotFoundf("Bill with Id (%d) not found.", 404))

		rec, env := doRequest(t, newBillRouter(svc), "DELETE", "/bills/404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Bill with Id (404) not found.", env.Message)
	})
}
