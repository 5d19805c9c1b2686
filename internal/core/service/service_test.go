package service_test

import (
	"context"
	"testing"

	"github.com/MikeRez0/esimhub/internal/adapter/storage/memory"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port/mock"
	"github.com/MikeRez0/esimhub/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testBundle = &domain.Bundle{
	Code:         "esim_1GB_7D_US",
	Name:         "1GB, 7 Days, United States",
	CountryISO:   "US",
	UnitPrice:    decimal.MustParse("4.50"),
	Currency:     "USD",
	DataAmountMB: 1024,
	DurationDays: 7,
	Available:    true,
}

func newMetrics(ctrl *gomock.Controller) *mock.MockMetrics {
	m := mock.NewMockMetrics(ctrl)
	m.EXPECT().OrderTransition(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ProvisioningAttempt(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().LedgerEntryWritten(gomock.Any()).AnyTimes()
	m.EXPECT().IdempotencyDecision(gomock.Any()).AnyTimes()
	m.EXPECT().Reconciliation(gomock.Any()).AnyTimes()
	return m
}

type orderEnv struct {
	store    *memory.Store
	ledger   *service.LedgerService
	idem     *service.IdempotencyService
	catalog  *mock.MockBundleCatalog
	gateway  *mock.MockProvisioningGateway
	payments *mock.MockPaymentIntents
	orders   *service.OrderService
}

func newOrderEnv(t *testing.T, ctrl *gomock.Controller, conf service.OrderConfig) *orderEnv {
	t.Helper()

	logger, _ := zap.NewProduction()
	metrics := newMetrics(ctrl)

	env := &orderEnv{
		store:    memory.New(),
		catalog:  mock.NewMockBundleCatalog(ctrl),
		gateway:  mock.NewMockProvisioningGateway(ctrl),
		payments: mock.NewMockPaymentIntents(ctrl),
	}

	var err error
	env.ledger, err = service.NewLedgerService(env.store, metrics, logger)
	require.NoError(t, err)
	env.idem, err = service.NewIdempotencyService(env.store, metrics, logger)
	require.NoError(t, err)
	env.orders, err = service.NewOrderService(env.store, env.ledger, env.catalog, env.gateway,
		env.payments, env.idem, metrics, conf, logger)
	require.NoError(t, err)

	return env
}

func (e *orderEnv) vendor(t *testing.T, mode domain.BillingMode, status domain.VendorStatus,
	creditLimit string) *domain.Vendor {
	t.Helper()

	v, err := e.store.CreateVendor(context.Background(), &domain.Vendor{
		Name:        "Vendor " + string(mode),
		Email:       string(mode) + "-" + string(status) + "@example.com",
		BillingMode: mode,
		Status:      status,
		Currency:    "USD",
		CreditLimit: decimal.MustParse(creditLimit),
	})
	require.NoError(t, err)
	return v
}

func (e *orderEnv) topUp(t *testing.T, vendorID uint64, amount string) {
	t.Helper()

	_, err := e.ledger.TopUpWallet(context.Background(), vendorID, decimal.MustParse(amount), "pi_topup", "test top-up")
	require.NoError(t, err)
}

func provisioned(external string, iccids ...string) *domain.ProvisioningResult {
	result := &domain.ProvisioningResult{ExternalOrderID: external, Status: "completed"}
	for _, iccid := range iccids {
		result.ESIMs = append(result.ESIMs, domain.ProvisionedESIM{
			ICCID:       iccid,
			MatchingID:  "M-" + iccid,
			SMDPAddress: "rsp.example.com",
		})
	}
	return result
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Zero(t, decimal.MustParse(expected).Cmp(actual), "expected %s, got %s", expected, actual)
}
