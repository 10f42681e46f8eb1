package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/dto/catalog/response"
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	bankdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/bank"
	depositdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/deposit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBankUsecase struct {
	banks []*domain.Bank
	bank  *bankdto.GetBankOutput
	err   error
}

func (f *fakeBankUsecase) ListBanks(context.Context) ([]*domain.Bank, error) {
	return f.banks, f.err
}

func (f *fakeBankUsecase) GetBank(_ context.Context, bankID int64) (*bankdto.GetBankOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.bank == nil || f.bank.Bank.ID != bankID {
		return nil, domain.ErrBankNotFound
	}
	return f.bank, nil
}

func (f *fakeBankUsecase) CreateBank(context.Context, *bankdto.CreateBankInput) (*domain.Bank, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBankUsecase) UpdateBank(context.Context, *bankdto.UpdateBankInput) (*domain.Bank, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBankUsecase) DeleteBank(context.Context, int64) error {
	return errors.New("not implemented")
}

type fakeDepositUsecase struct {
	deposits   []*domain.Deposit
	err        error
	lastFilter *domain.DepositFilter
}

func (f *fakeDepositUsecase) ListDeposits(_ context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	f.lastFilter = &filter
	return f.deposits, f.err
}

func (f *fakeDepositUsecase) ListAllActiveDeposits(ctx context.Context) ([]*domain.Deposit, error) {
	return f.ListDeposits(ctx, domain.DepositFilter{})
}

func (f *fakeDepositUsecase) GetDeposit(_ context.Context, depositID int64) (*domain.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.deposits {
		if d.ID == depositID {
			return d, nil
		}
	}
	return nil, domain.ErrDepositNotFound
}

func (f *fakeDepositUsecase) CreateDeposit(context.Context, *depositdto.CreateDepositInput) (*domain.Deposit, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDepositUsecase) UpdateDeposit(context.Context, *depositdto.UpdateDepositInput) (*domain.Deposit, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDepositUsecase) DeleteDeposit(context.Context, int64) error {
	return errors.New("not implemented")
}

func (f *fakeDepositUsecase) CountActiveByCurrency(context.Context) (map[domain.Currency]int64, error) {
	return nil, errors.New("not implemented")
}

var testBank = &domain.Bank{ID: 1, Name: "Test Bank"}

func testDeposit(id int64, name string) *domain.Deposit {
	return &domain.Deposit{
		ID:           id,
		BankID:       testBank.ID,
		Name:         name,
		MinAmount:    decimal.NewFromInt(1000),
		InterestRate: decimal.RequireFromString("3.5"),
		TermMonths:   12,
		Currency:     domain.CurrencyBGN,
		IsActive:     true,
		Bank:         testBank,
	}
}

func newTestRouter(banks *fakeBankUsecase, deposits *fakeDepositUsecase, m *metrics.CatalogMetrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCatalogHandler(banks, deposits, m).RegisterRoutes(r)
	return r
}

func serve(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestListBanks(t *testing.T) {
	banks := &fakeBankUsecase{banks: []*domain.Bank{
		{ID: 2, Name: "Банка ДСК", Logo: new(string)},
		{ID: 1, Name: "УниКредит Булбанк"},
	}}
	r := newTestRouter(banks, &fakeDepositUsecase{}, nil)

	w := serve(r, "/api/banks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Банка ДСК"},{"id":1,"name":"УниКредит Булбанк"}]`, w.Body.String())
}

func TestListBanksEmpty(t *testing.T) {
	r := newTestRouter(&fakeBankUsecase{}, &fakeDepositUsecase{}, nil)

	w := serve(r, "/api/banks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListDepositsPassesFilter(t *testing.T) {
	deposits := &fakeDepositUsecase{}
	r := newTestRouter(&fakeBankUsecase{}, deposits, nil)

	w := serve(r, "/api/deposits?bankId=1&currency=bgn&minTerm=6&maxTerm=24&minAmount=10000&sortBy=bank&sortDescending=true")
	require.Equal(t, http.StatusOK, w.Code)

	f := deposits.lastFilter
	require.NotNil(t, f)
	assert.Equal(t, int64(1), *f.BankID)
	assert.Equal(t, domain.CurrencyBGN, *f.Currency)
	assert.Equal(t, 6, *f.MinTermMonths)
	assert.Equal(t, 24, *f.MaxTermMonths)
	assert.True(t, decimal.NewFromInt(10000).Equal(*f.MinAmount))
	assert.Equal(t, domain.SortByBank, f.SortBy)
	assert.True(t, f.SortDescending)
}

func TestListDepositsWithoutQuery(t *testing.T) {
	deposits := &fakeDepositUsecase{deposits: []*domain.Deposit{testDeposit(1, "a"), testDeposit(2, "b")}}
	m := metrics.NewCatalogMetrics(prometheus.NewRegistry())
	r := newTestRouter(&fakeBankUsecase{}, deposits, m)

	w := serve(r, "/api/deposits")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DepositFilter{}, *deposits.lastFilter)

	var body []response.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "BGN", body[0].Currency)
	assert.Nil(t, body[0].MaxAmount)
	assert.Equal(t, response.BankResponse{ID: 1, Name: "Test Bank"}, body[0].Bank)

	assert.Equal(t, 1, promtestutil.CollectAndCount(m.DepositQueryResults))
}

func TestListDepositsBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"unknown currency", "currency=GBP", "currency"},
		{"non-decimal amount", "minAmount=lots", "minAmount"},
		{"non-integer term", "minTerm=abc", "minTerm"},
		{"non-integer bank", "bankId=x", "bankId"},
		{"non-bool direction", "sortDescending=maybe", "query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposits := &fakeDepositUsecase{}
			r := newTestRouter(&fakeBankUsecase{}, deposits, nil)

			w := serve(r, "/api/deposits?"+tt.query)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, deposits.lastFilter)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotEmpty(t, body.Details)
			assert.Equal(t, tt.field, body.Details[0].Field)
		})
	}
}

func TestListDepositsEmptyParamsAreIgnored(t *testing.T) {
	for _, param := range []string{"bankId", "currency", "minTerm", "maxTerm", "minAmount", "sortBy"} {
		t.Run(param, func(t *testing.T) {
			deposits := &fakeDepositUsecase{}
			r := newTestRouter(&fakeBankUsecase{}, deposits, nil)

			w := serve(r, "/api/deposits?"+param+"=")
			require.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, deposits.lastFilter)
			assert.Equal(t, domain.DepositFilter{}, *deposits.lastFilter)
		})
	}
}

func TestGetDeposit(t *testing.T) {
	deposits := &fakeDepositUsecase{deposits: []*domain.Deposit{testDeposit(1, "Test Deposit")}}
	r := newTestRouter(&fakeBankUsecase{}, deposits, nil)

	w := serve(r, "/api/deposits/1")
	require.Equal(t, http.StatusOK, w.Code)
	var body response.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Test Deposit", body.Name)
	assert.Equal(t, "3.50", body.InterestRate.String())

	assert.Equal(t, http.StatusNotFound, serve(r, "/api/deposits/999").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "/api/deposits/abc").Code)
}

func TestGetDepositWithoutBankIsServerError(t *testing.T) {
	d := testDeposit(1, "orphan")
	d.Bank = nil
	r := newTestRouter(&fakeBankUsecase{}, &fakeDepositUsecase{deposits: []*domain.Deposit{d}}, nil)

	assert.Equal(t, http.StatusInternalServerError, serve(r, "/api/deposits/1").Code)
}

func TestGetBank(t *testing.T) {
	inactive := testDeposit(2, "closed")
	inactive.IsActive = false
	banks := &fakeBankUsecase{bank: &bankdto.GetBankOutput{
		Bank:     testBank,
		Deposits: []*domain.Deposit{testDeposit(1, "open"), inactive},
	}}
	r := newTestRouter(banks, &fakeDepositUsecase{}, nil)

	w := serve(r, "/api/banks/1")
	require.Equal(t, http.StatusOK, w.Code)
	var body response.BankDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Test Bank", body.Name)
	require.Len(t, body.Deposits, 2)
	assert.Equal(t, "closed", body.Deposits[1].Name)

	assert.Equal(t, http.StatusNotFound, serve(r, "/api/banks/7").Code)
}

func TestUsecaseFailureIsServerError(t *testing.T) {
	failure := errors.New("connection reset")
	r := newTestRouter(&fakeBankUsecase{err: failure}, &fakeDepositUsecase{err: failure}, nil)

	for _, target := range []string{"/api/banks", "/api/deposits", "/api/deposits/1", "/api/banks/1"} {
		w := serve(r, target)
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
		assert.NotContains(t, w.Body.String(), "connection reset", target)
	}
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", NewHealthHandler(fakePinger{}).Health)
	w := serve(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	r = gin.New()
	r.GET("/health", NewHealthHandler(fakePinger{err: errors.New("down")}).Health)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "/health").Code)
}
