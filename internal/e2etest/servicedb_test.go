package e2etest_test

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/adapter/storage"
	"github.com/MikeRez0/esimhub/internal/adapter/storage/repository"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port/mock"
	"github.com/MikeRez0/esimhub/internal/core/service"
	"github.com/MikeRez0/esimhub/internal/e2etest/testdb"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbtest *testdb.TestDBInstance

func setup() {
	var err error
	dbtest, err = testdb.NewTestDBInstance()
	if err != nil {
		if errors.Is(err, testdb.ErrNoDatabase) {
			log.Println("e2e tests skipped:", err)
			return
		}
		log.Fatal(err)
	}
}

func shutdown() {
	if dbtest != nil {
		dbtest.Down()
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	shutdown()
	os.Exit(code)
}

func getRepo(t *testing.T) *repository.Repository {
	t.Helper()
	if dbtest == nil {
		t.Skip("no test database")
	}

	ctx := context.Background()
	db, err := storage.NewDBStorage(ctx, &config.Database{DSN: dbtest.DSN})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.RunMigrations())
	require.NoError(t, dbtest.Truncate(ctx))

	repo, err := repository.NewRepository(db)
	require.NoError(t, err)
	return repo
}

func newMetrics(ctrl *gomock.Controller) *mock.MockMetrics {
	m := mock.NewMockMetrics(ctrl)
	m.EXPECT().OrderTransition(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ProvisioningAttempt(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().LedgerEntryWritten(gomock.Any()).AnyTimes()
	m.EXPECT().LedgerMismatch().AnyTimes()
	m.EXPECT().IdempotencyDecision(gomock.Any()).AnyTimes()
	return m
}

func TestServiceDB_Ledger(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	ctx := context.Background()
	repo := getRepo(t)

	s, err := service.NewLedgerService(repo, newMetrics(mockCtrl), logger)
	require.NoError(t, err)

	vendor, err := repo.CreateVendor(ctx, &domain.Vendor{
		Name:        "Acme Travel",
		Email:       "ops@acme.example",
		BillingMode: domain.BillingModePrepaid,
		Status:      domain.VendorStatusActive,
		Currency:    "USD",
	})
	require.NoError(t, err)

	_, err = s.TopUpWallet(ctx, vendor.ID, decimal.MustParse("1000"), "pi_1", "top-up")
	require.NoError(t, err)
	debit, err := s.DebitForOrder(ctx, vendor.ID, decimal.MustParse("600"), 1, "order 1")
	require.NoError(t, err)
	_, err = s.DebitForOrder(ctx, vendor.ID, decimal.MustParse("500"), 2, "order 2")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	_, err = s.ReverseEntry(ctx, vendor.ID, debit.ID, "duplicate")
	require.NoError(t, err)
	_, err = s.ReverseEntry(ctx, vendor.ID, debit.ID, "duplicate")
	assert.ErrorIs(t, err, domain.ErrEntryAlreadyReversed)

	check, err := s.ReconcileVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.True(t, check.Matches)
	assert.Zero(t, check.Calculated.Cmp(decimal.MustParse("1000")))
}

func TestServiceDB_ConcurrentDebits(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	ctx := context.Background()
	repo := getRepo(t)

	s, err := service.NewLedgerService(repo, newMetrics(mockCtrl), logger)
	require.NoError(t, err)

	vendor, err := repo.CreateVendor(ctx, &domain.Vendor{
		Name:        "Globe",
		Email:       "globe@example.com",
		BillingMode: domain.BillingModePrepaid,
		Status:      domain.VendorStatusActive,
		Currency:    "USD",
	})
	require.NoError(t, err)
	_, err = s.TopUpWallet(ctx, vendor.ID, decimal.MustParse("1000"), "pi_1", "top-up")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(orderID uint64) {
			defer wg.Done()
			_, err := s.DebitForOrder(ctx, vendor.ID, decimal.MustParse("150"), orderID, "order")
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		}(uint64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 6, succeeded)

	v, err := s.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Zero(t, v.WalletBalance.Cmp(decimal.MustParse("100")))
}

func TestServiceDB_B2BOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	ctx := context.Background()
	repo := getRepo(t)
	metrics := newMetrics(mockCtrl)

	ledger, err := service.NewLedgerService(repo, metrics, logger)
	require.NoError(t, err)
	idem, err := service.NewIdempotencyService(repo, metrics, logger)
	require.NoError(t, err)

	catalog := mock.NewMockBundleCatalog(mockCtrl)
	gateway := mock.NewMockProvisioningGateway(mockCtrl)
	catalog.EXPECT().GetBundleDetails(gomock.Any(), "esim_1GB_7D_FR").Return(&domain.Bundle{
		Code:      "esim_1GB_7D_FR",
		Name:      "1GB France",
		UnitPrice: decimal.MustParse("3.25"),
		Currency:  "USD",
		Available: true,
	}, nil).Times(1)
	gateway.EXPECT().CreateOrder(gomock.Any(), "esim_1GB_7D_FR", 2).Return(&domain.ProvisioningResult{
		ExternalOrderID: "ext-fr-1",
		ESIMs: []domain.ProvisionedESIM{
			{ICCID: "8933000000000000001", MatchingID: "A1"},
			{ICCID: "8933000000000000002", MatchingID: "A2"},
		},
	}, nil).Times(1)

	orders, err := service.NewOrderService(repo, ledger, catalog, gateway, mock.NewMockPaymentIntents(mockCtrl),
		idem, metrics, service.OrderConfig{}, logger)
	require.NoError(t, err)

	vendor, err := repo.CreateVendor(ctx, &domain.Vendor{
		Name:        "Roam",
		Email:       "roam@example.com",
		BillingMode: domain.BillingModePostpaid,
		Status:      domain.VendorStatusActive,
		Currency:    "USD",
		CreditLimit: decimal.MustParse("50"),
	})
	require.NoError(t, err)

	req := domain.B2BOrderRequest{
		VendorID:       vendor.ID,
		BundleCode:     "esim_1GB_7D_FR",
		Quantity:       2,
		IdempotencyKey: "order-1",
	}
	order, err := orders.CreateB2BOrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, []string{"8933000000000000001", "8933000000000000002"}, order.ICCIDs)

	replayed, err := orders.CreateB2BOrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, order.ID, replayed.ID)

	stored, err := orders.GetOrderByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "ext-fr-1", stored.ExternalOrderID)
	assert.Equal(t, 3, stored.Version)

	v, err := ledger.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Zero(t, v.OutstandingBalance.Cmp(decimal.MustParse("6.50")))

	stale, err := orders.FindStaleOrders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestServiceDB_IdempotencyReservation(t *testing.T) {
	ctx := context.Background()
	repo := getRepo(t)

	key := domain.IdempotencyKey{Key: "k", Method: "POST", Path: "/api/v1/orders", ActorID: "user:1"}
	now := time.Now()

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateIdempotencyRecord(ctx, &domain.IdempotencyRecord{
				IdempotencyKey: key,
				RequestHash:    domain.HashRequest(nil),
				Status:         domain.IdempotencyStatusPending,
				CreatedAt:      now,
				UpdatedAt:      now,
				ExpiresAt:      now.Add(time.Hour),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	won := 0
	for err := range results {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflictingData)
	}
	assert.Equal(t, 1, won)

	count, err := repo.DeleteExpiredIdempotencyRecords(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
