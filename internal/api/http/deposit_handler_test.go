package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	httpapi "banking-backoffice/internal/api/http"
	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDepositService
type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) GetDepositsForAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}
func (m *MockDepositService) GetDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockDepositService) CreateDeposit(ctx context.Context, accountID int64, req *domain.DepositCreationRequest) (*domain.Deposit, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockDepositService) UpdateDeposit(ctx context.Context, depositID int64, updated *domain.Deposit) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockDepositService) DeleteDeposit(ctx context.Context, depositID int64) error {
	args := m.Called(ctx, depositID)
	return args.Error(0)
}
func (m *MockDepositService) ProcessDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func newDepositRouter(svc *MockDepositService) *mux.Router {
	router := mux.NewRouter()
	httpapi.NewDepositHandler(svc).Register(router)
	return router
}

func TestDepositHandler_CreateDeposit(t *testing.T) {
	svc := new(MockDepositService)
	svc.On("CreateDeposit", mock.Anything, int64(2), mock.AnythingOfType("*domain.DepositCreationRequest")).
		Return(&domain.Deposit{ID: 4, Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusPending, PayeeID: 2, Medium: domain.TransactionMediumBalance, Amount: 25.5}, nil)

	body := `{"medium":"BALANCE","amount":25.5,"description":"paycheck"}`
	rec, env := doRequest(t, newDepositRouter(svc), "POST", "/accounts/2/deposits", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Created the deposit and added it to the account", env.Message)
}

func TestDepositHandler_CreateDeposit_InvalidMedium(t *testing.T) {
	svc := new(MockDepositService)

	body := `{"medium":"CRYPTO","amount":25.5}`
	rec, _ := doRequest(t, newDepositRouter(svc), "POST", "/accounts/2/deposits", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDepositHandler_ProcessDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockDepositService)
		svc.On("ProcessDeposit", mock.Anything, int64(4)).
			Return(&domain.Deposit{ID: 4, Status: domain.TransactionStatusCompleted}, nil)

		rec, env := doRequest(t, newDepositRouter(svc), "PUT", "/deposits/process/4", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Processed Deposit with Id (4).", env.Message)

		var deposits []domain.Deposit
		assert.NoError(t, json.Unmarshal(env.Data, &deposits))
		assert.Len(t, deposits, 1)
		assert.Equal(t, domain.TransactionStatusCompleted, deposits[0].Status)
	})

	t.Run("AlreadyProcessed", func(t *testing.T) {
		svc := new(MockDepositService)
		svc.On("ProcessDeposit", mock.Anything, int64(4)).
			Return(nil, apperr.Conflictf("Deposit with Id (%d) has already been processed.", 4))

		rec, env := doRequest(t, newDepositRouter(svc), "PUT", "/deposits/process/4", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Deposit with Id (4) has already been processed.", env.Message)
	})
}
