package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/storage/memory"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/MikeRez0/esimhub/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderService_CreateB2COrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type prepareCatalog func(env *orderEnv)

	type createOrderTest struct {
		name      string
		req       domain.B2COrderRequest
		mock      prepareCatalog
		expError  error
		expTotal  string
		expStatus domain.OrderStatus
	}

	unavailable := *testBundle
	unavailable.Available = false

	tests := []createOrderTest{
		{
			name: "Create good order",
			req:  domain.B2COrderRequest{UserID: 1, CustomerEmail: "a@example.com", BundleCode: testBundle.Code, Quantity: 2},
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
			},
			expTotal:  "9.00",
			expStatus: domain.OrderStatusCreated,
		},
		{
			name:     "Zero quantity",
			req:      domain.B2COrderRequest{UserID: 1, BundleCode: testBundle.Code, Quantity: 0},
			mock:     func(env *orderEnv) {},
			expError: domain.ErrInvalidQuantity,
		},
		{
			name: "Unknown bundle",
			req:  domain.B2COrderRequest{UserID: 1, BundleCode: "nope", Quantity: 1},
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), "nope").Return(nil, domain.ErrBundleNotFound)
			},
			expError: domain.ErrBundleNotFound,
		},
		{
			name: "Bundle not sold",
			req:  domain.B2COrderRequest{UserID: 1, BundleCode: testBundle.Code, Quantity: 1},
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(&unavailable, nil)
			},
			expError: domain.ErrBundleUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
			test.mock(env)

			order, err := env.orders.CreateB2COrder(context.Background(), test.req)
			assert.ErrorIs(t, err, test.expError)
			if test.expError != nil {
				assert.Nil(t, order)
				return
			}

			require.NotNil(t, order)
			assert.Equal(t, test.expStatus, order.Status)
			assert.Equal(t, domain.PaymentStatusCreated, order.PaymentStatus)
			assert.Equal(t, domain.OrderChannelB2C, order.Channel)
			assert.Regexp(t, "^ORD-", order.OrderNumber)
			assertAmount(t, test.expTotal, order.TotalAmount)
		})
	}
}

func TestOrderService_CreateB2COrderIdempotent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil).Times(1)

	req := domain.B2COrderRequest{UserID: 1, BundleCode: testBundle.Code, Quantity: 1, IdempotencyKey: "key-1"}

	first, err := env.orders.CreateB2COrder(ctx, req)
	require.NoError(t, err)
	second, err := env.orders.CreateB2COrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OrderNumber, second.OrderNumber)

	changed := req
	changed.Quantity = 3
	_, err = env.orders.CreateB2COrder(ctx, changed)
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)

	list, err := env.orders.SearchOrders(ctx, domain.OrderFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderService_CreateB2BOrderSameKeyConcurrently(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	vendor := env.vendor(t, domain.BillingModePrepaid, domain.VendorStatusActive, "0")
	env.topUp(t, vendor.ID, "100")

	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil).Times(1)
	env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
		DoAndReturn(func(context.Context, string, int) (*domain.ProvisioningResult, error) {
			time.Sleep(20 * time.Millisecond)
			return provisioned("ext-k1", "8910"), nil
		}).Times(1)

	req := domain.B2BOrderRequest{VendorID: vendor.ID, BundleCode: testBundle.Code, Quantity: 1, IdempotencyKey: "K1"}

	const workers = 8
	results := make([]*domain.Order, workers)
	errs := make([]error, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = env.orders.CreateB2BOrder(ctx, req)
		}(i)
	}
	close(start)
	wg.Wait()

	list, err := env.orders.SearchOrders(ctx, domain.OrderFilter{VendorID: vendor.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	created := list[0]

	succeeded := 0
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			assert.ErrorIs(t, errs[i], domain.ErrIdempotencyConflict)
			continue
		}
		succeeded++
		assert.Equal(t, created.ID, results[i].ID)
		assert.Equal(t, created.OrderNumber, results[i].OrderNumber)
	}
	assert.GreaterOrEqual(t, succeeded, 1)

	debits, err := env.ledger.ListEntries(ctx, vendor.ID, domain.LedgerFilter{Type: domain.LedgerEntryDebit})
	require.NoError(t, err)
	assert.Len(t, debits, 1)

	v, err := env.ledger.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assertAmount(t, "95.50", v.WalletBalance)

	// replay after the race settles
	again, err := env.orders.CreateB2BOrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestOrderService_CreateB2BOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createB2BTest struct {
		name          string
		conf          service.OrderConfig
		wallet        string
		mock          func(env *orderEnv)
		expError      error
		expStatus     domain.OrderStatus
		expPayment    domain.PaymentStatus
		expWallet     string
		expOrderCount int
	}

	tests := []createB2BTest{
		{
			name:   "Provisioned",
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(provisioned("ext-1", "8901000000000000001"), nil)
			},
			expStatus:     domain.OrderStatusCompleted,
			expPayment:    domain.PaymentStatusSucceeded,
			expWallet:     "95.50",
			expOrderCount: 1,
		},
		{
			name:   "Insufficient balance creates nothing",
			wallet: "1",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
			},
			expError:      domain.ErrInsufficientBalance,
			expWallet:     "1",
			expOrderCount: 0,
		},
		{
			name:   "Provider busy",
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningRateLimited, Message: "slow down"})
			},
			expStatus:     domain.OrderStatusSyncFailed,
			expPayment:    domain.PaymentStatusSucceeded,
			expWallet:     "95.50",
			expOrderCount: 1,
		},
		{
			name:   "Bundle refused by provider is retried",
			conf:   service.OrderConfig{RefundPolicy: domain.RefundPolicyOnPermanentFailure},
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningInvalidBundle, Message: "retired"})
			},
			expStatus:     domain.OrderStatusSyncFailed,
			expPayment:    domain.PaymentStatusSucceeded,
			expWallet:     "95.50",
			expOrderCount: 1,
		},
		{
			name:   "Outcome unknown is held without refund",
			conf:   service.OrderConfig{RefundPolicy: domain.RefundPolicyOnPermanentFailure},
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningOutcomeUnknown, Message: "processing"})
			},
			expStatus:     domain.OrderStatusProvisioning,
			expPayment:    domain.PaymentStatusSucceeded,
			expWallet:     "95.50",
			expOrderCount: 1,
		},
		{
			name:   "Rejected without refund policy",
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningRejected, Message: "conflict"})
			},
			expStatus:     domain.OrderStatusFailed,
			expPayment:    domain.PaymentStatusSucceeded,
			expWallet:     "95.50",
			expOrderCount: 1,
		},
		{
			name:   "Rejected and refunded",
			conf:   service.OrderConfig{RefundPolicy: domain.RefundPolicyOnPermanentFailure},
			wallet: "100",
			mock: func(env *orderEnv) {
				env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
				env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
					Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningRejected, Message: "conflict"})
			},
			expStatus:     domain.OrderStatusFailed,
			expPayment:    domain.PaymentStatusRefunded,
			expWallet:     "100",
			expOrderCount: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			env := newOrderEnv(t, mockCtrl, test.conf)
			vendor := env.vendor(t, domain.BillingModePrepaid, domain.VendorStatusActive, "0")
			env.topUp(t, vendor.ID, test.wallet)
			test.mock(env)

			order, err := env.orders.CreateB2BOrder(ctx, domain.B2BOrderRequest{
				VendorID:   vendor.ID,
				BundleCode: testBundle.Code,
				Quantity:   1,
			})
			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				require.NotNil(t, order)
				assert.Equal(t, test.expStatus, order.Status)
				assert.Equal(t, test.expPayment, order.PaymentStatus)
				assert.NotZero(t, order.DebitEntryID)
			}

			v, err := env.ledger.GetVendor(ctx, vendor.ID)
			require.NoError(t, err)
			assertAmount(t, test.expWallet, v.WalletBalance)

			list, err := env.orders.SearchOrders(ctx, domain.OrderFilter{VendorID: vendor.ID})
			require.NoError(t, err)
			assert.Len(t, list, test.expOrderCount)

			check, err := env.ledger.ReconcileVendor(ctx, vendor.ID)
			require.NoError(t, err)
			assert.True(t, check.Matches)
		})
	}
}

func TestOrderService_ProvisionedOrderDetails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	vendor := env.vendor(t, domain.BillingModePostpaid, domain.VendorStatusActive, "100")

	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
	env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 2).
		Return(provisioned("ext-2", "8901", "8902"), nil)

	order, err := env.orders.CreateB2BOrder(ctx, domain.B2BOrderRequest{
		VendorID:   vendor.ID,
		BundleCode: testBundle.Code,
		Quantity:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, "ext-2", order.ExternalOrderID)
	assert.Equal(t, []string{"8901", "8902"}, order.ICCIDs)
	assert.Equal(t, []string{"M-8901", "M-8902"}, order.MatchingIDs)
	assert.NotNil(t, order.PaidAt)
	assert.NotNil(t, order.ProvisionedAt)
	assert.NotNil(t, order.CompletedAt)

	v, err := env.ledger.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assertAmount(t, "9", v.OutstandingBalance)

	byNumber, err := env.orders.GetOrderByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, byNumber.ID)
}

func TestOrderService_PaymentFlow(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)

	order, err := env.orders.CreateB2COrder(ctx, domain.B2COrderRequest{
		UserID:     7,
		BundleCode: testBundle.Code,
		Quantity:   1,
	})
	require.NoError(t, err)

	env.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
			assert.Equal(t, order.OrderNumber, req.IdempotencyKey)
			assertAmount(t, "4.50", req.Amount)
			return &domain.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret", Amount: 450, Currency: "usd"}, nil
		}).Times(2)

	pending, intent, err := env.orders.StartPayment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaymentPending, pending.Status)
	assert.Equal(t, domain.PaymentStatusPending, pending.PaymentStatus)
	assert.Equal(t, "pi_123", intent.ID)

	// starting again returns the same intent
	again, _, err := env.orders.StartPayment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaymentPending, again.Status)

	env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
		Return(provisioned("ext-9", "8909"), nil).Times(1)

	paid, err := env.orders.MarkOrderAsPaid(ctx, order.ID, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, paid.Status)
	assert.Equal(t, domain.PaymentStatusSucceeded, paid.PaymentStatus)

	duplicate, err := env.orders.MarkOrderAsPaid(ctx, order.ID, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, duplicate.Status)
	assert.Equal(t, "ext-9", duplicate.ExternalOrderID)

	_, _, err = env.orders.StartPayment(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
}

func TestOrderService_MarkPaymentFailed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil)
	env.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentIntent{ID: "pi_fail"}, nil)

	order, err := env.orders.CreateB2COrder(ctx, domain.B2COrderRequest{UserID: 1, BundleCode: testBundle.Code, Quantity: 1})
	require.NoError(t, err)
	_, _, err = env.orders.StartPayment(ctx, order.ID)
	require.NoError(t, err)

	failed, err := env.orders.MarkPaymentFailed(ctx, "pi_fail", "card_declined")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCreated, failed.Status)
	assert.Equal(t, domain.PaymentStatusFailed, failed.PaymentStatus)
	assert.Equal(t, domain.OrderErrorPaymentFailed, failed.ErrorCode)
	assert.Equal(t, "card_declined", failed.ErrorMessage)

	_, err = env.orders.MarkPaymentFailed(ctx, "pi_unknown", "card_declined")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestOrderService_StartPaymentErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()

	t.Run("B2B order", func(t *testing.T) {
		env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
		order, err := env.store.CreateOrder(ctx, &domain.Order{
			OrderNumber: domain.NewOrderNumber(),
			Channel:     domain.OrderChannelB2B,
			VendorID:    1,
			Status:      domain.OrderStatusCreated,
		})
		require.NoError(t, err)

		_, _, err = env.orders.StartPayment(ctx, order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderChannelMismatch)
	})

	t.Run("Provider down", func(t *testing.T) {
		env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
		order, err := env.store.CreateOrder(ctx, &domain.Order{
			OrderNumber: domain.NewOrderNumber(),
			Channel:     domain.OrderChannelB2C,
			UserID:      1,
			TotalAmount: decimal.MustParse("4.50"),
			Status:      domain.OrderStatusCreated,
		})
		require.NoError(t, err)
		env.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe: 503"))

		_, _, err = env.orders.StartPayment(ctx, order.ID)
		assert.ErrorIs(t, err, domain.ErrPaymentProviderFailed)

		stored, err := env.orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCreated, stored.Status)
	})
}

func TestOrderService_ProvisionOrderOnce(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})

	order, err := env.store.CreateOrder(ctx, &domain.Order{
		OrderNumber:   domain.NewOrderNumber(),
		Channel:       domain.OrderChannelB2C,
		UserID:        1,
		BundleCode:    testBundle.Code,
		Quantity:      1,
		Status:        domain.OrderStatusPaid,
		PaymentStatus: domain.PaymentStatusSucceeded,
	})
	require.NoError(t, err)

	env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
		DoAndReturn(func(ctx context.Context, code string, qty int) (*domain.ProvisioningResult, error) {
			time.Sleep(20 * time.Millisecond)
			return provisioned("ext-once", "8900"), nil
		}).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.orders.ProvisionOrder(ctx, order.ID)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
			}
		}()
	}
	wg.Wait()

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, stored.Status)
	assert.Equal(t, "ext-once", stored.ExternalOrderID)

	// provisioned orders are returned unchanged
	again, err := env.orders.ProvisionOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Version, again.Version)
}

func TestOrderService_ProvisionOrderFailures(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type provisionTest struct {
		name      string
		result    *domain.ProvisioningResult
		err       error
		expStatus domain.OrderStatus
		expCode   string
		expRetry  int
	}

	tests := []provisionTest{
		{
			name:      "Timeout is retried",
			err:       context.DeadlineExceeded,
			expStatus: domain.OrderStatusSyncFailed,
			expCode:   string(domain.ProvisioningTimeout),
			expRetry:  1,
		},
		{
			name:      "Auth failure is retried",
			err:       &domain.ProvisioningError{Kind: domain.ProvisioningAuthFailed, Message: "bad key"},
			expStatus: domain.OrderStatusSyncFailed,
			expCode:   string(domain.ProvisioningAuthFailed),
			expRetry:  1,
		},
		{
			name:      "Bad bundle is retried",
			err:       &domain.ProvisioningError{Kind: domain.ProvisioningInvalidBundle, Code: "404", Message: "not found"},
			expStatus: domain.OrderStatusSyncFailed,
			expCode:   string(domain.ProvisioningInvalidBundle),
			expRetry:  1,
		},
		{
			name:      "Unknown error is permanent",
			err:       errors.New("unexpected EOF"),
			expStatus: domain.OrderStatusFailed,
			expCode:   string(domain.ProvisioningUnknown),
		},
		{
			name:      "Missing reference needs review",
			result:    &domain.ProvisioningResult{},
			expStatus: domain.OrderStatusProvisioning,
			expCode:   string(domain.ProvisioningOutcomeUnknown),
		},
		{
			name:      "Unreadable provider answer needs review",
			err:       &domain.ProvisioningError{Kind: domain.ProvisioningOutcomeUnknown, Message: "error on response decode"},
			expStatus: domain.OrderStatusProvisioning,
			expCode:   string(domain.ProvisioningOutcomeUnknown),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			env := newOrderEnv(t, mockCtrl, service.OrderConfig{})

			order, err := env.store.CreateOrder(ctx, &domain.Order{
				OrderNumber: domain.NewOrderNumber(),
				Channel:     domain.OrderChannelB2C,
				BundleCode:  testBundle.Code,
				Quantity:    1,
				Status:      domain.OrderStatusPaid,
			})
			require.NoError(t, err)
			env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).Return(test.result, test.err)

			failed, err := env.orders.ProvisionOrder(ctx, order.ID)
			assert.ErrorIs(t, err, domain.ErrProvisioningFailed)
			require.NotNil(t, failed)
			assert.Equal(t, test.expStatus, failed.Status)
			assert.Equal(t, test.expCode, failed.ErrorCode)
			assert.Equal(t, test.expRetry, failed.RetryCount)
			assert.Empty(t, failed.ExternalOrderID)

			if test.expStatus == domain.OrderStatusProvisioning {
				// no second provider call for an order that may already exist upstream
				_, err = env.orders.RetryProvisioning(ctx, order.ID)
				assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
				_, err = env.orders.ProvisionOrder(ctx, order.ID)
				assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
			}
		})
	}
}

// cancelAwareStore fails order updates once the context is done, like a database driver.
type cancelAwareStore struct {
	*memory.Store
}

func (s cancelAwareStore) UpdateOrder(ctx context.Context, orderID uint64,
	updateFn port.UpdateOrderFn) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Store.UpdateOrder(ctx, orderID, updateFn)
}

func TestOrderService_ProvisionOrderCallerGone(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	orders, err := service.NewOrderService(cancelAwareStore{env.store}, env.ledger, env.catalog, env.gateway,
		env.payments, env.idem, newMetrics(mockCtrl), service.OrderConfig{}, logger)
	require.NoError(t, err)

	order, err := env.store.CreateOrder(context.Background(), &domain.Order{
		OrderNumber:   domain.NewOrderNumber(),
		Channel:       domain.OrderChannelB2C,
		BundleCode:    testBundle.Code,
		Quantity:      1,
		Status:        domain.OrderStatusPaid,
		PaymentStatus: domain.PaymentStatusSucceeded,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
		DoAndReturn(func(context.Context, string, int) (*domain.ProvisioningResult, error) {
			cancel()
			return provisioned("ext-late", "8909"), nil
		})

	done, err := orders.ProvisionOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, done.Status)

	stored, err := env.orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, stored.Status)
	assert.Equal(t, "ext-late", stored.ExternalOrderID)
}

func TestOrderService_RetryAndFail(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{RefundPolicy: domain.RefundPolicyOnPermanentFailure})
	vendor := env.vendor(t, domain.BillingModePrepaid, domain.VendorStatusActive, "0")
	env.topUp(t, vendor.ID, "50")

	env.catalog.EXPECT().GetBundleDetails(gomock.Any(), testBundle.Code).Return(testBundle, nil).Times(2)
	gomock.InOrder(
		env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
			Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningUnavailable, Message: "503"}),
		env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
			Return(provisioned("ext-r", "8905"), nil),
		env.gateway.EXPECT().CreateOrder(gomock.Any(), testBundle.Code, 1).
			Return(nil, &domain.ProvisioningError{Kind: domain.ProvisioningUnavailable, Message: "503"}),
	)

	order, err := env.orders.CreateB2BOrder(ctx, domain.B2BOrderRequest{VendorID: vendor.ID, BundleCode: testBundle.Code, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusSyncFailed, order.Status)

	_, err = env.orders.CancelOrder(ctx, order.ID, "too slow")
	assert.ErrorIs(t, err, domain.ErrOrderNotCancelable)

	retried, err := env.orders.RetryProvisioning(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, retried.Status)
	assert.Empty(t, retried.ErrorCode)

	_, err = env.orders.RetryProvisioning(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)

	_, err = env.orders.FailOrder(ctx, order.ID, domain.OrderErrorRetryExhausted, "gave up")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)

	second, err := env.orders.CreateB2BOrder(ctx, domain.B2BOrderRequest{VendorID: vendor.ID, BundleCode: testBundle.Code, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusSyncFailed, second.Status)

	failed, err := env.orders.FailOrder(ctx, second.ID, domain.OrderErrorRetryExhausted, "gave up")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFailed, failed.Status)
	assert.Equal(t, domain.OrderErrorRetryExhausted, failed.ErrorCode)
	assert.Equal(t, domain.PaymentStatusRefunded, failed.PaymentStatus)

	_, err = env.orders.RetryProvisioning(ctx, second.ID)
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyRefunded)

	v, err := env.ledger.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assertAmount(t, "45.50", v.WalletBalance)
}

func TestOrderService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})
	vendor := env.vendor(t, domain.BillingModePrepaid, domain.VendorStatusActive, "0")
	env.topUp(t, vendor.ID, "20")

	t.Run("Unpaid order", func(t *testing.T) {
		order, err := env.store.CreateOrder(ctx, &domain.Order{
			OrderNumber: domain.NewOrderNumber(),
			Channel:     domain.OrderChannelB2C,
			Status:      domain.OrderStatusCreated,
		})
		require.NoError(t, err)

		canceled, err := env.orders.CancelOrder(ctx, order.ID, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)
		assert.Equal(t, "changed my mind", canceled.CancelReason)
		assert.NotNil(t, canceled.CanceledAt)

		_, err = env.orders.CancelOrder(ctx, order.ID, "again")
		assert.ErrorIs(t, err, domain.ErrOrderNotCancelable)
	})

	t.Run("Charged vendor order is refunded", func(t *testing.T) {
		debit, err := env.ledger.DebitForOrder(ctx, vendor.ID, decimal.MustParse("4.50"), 100, "order")
		require.NoError(t, err)

		order, err := env.store.CreateOrder(ctx, &domain.Order{
			ID:            100,
			OrderNumber:   domain.NewOrderNumber(),
			Channel:       domain.OrderChannelB2B,
			VendorID:      vendor.ID,
			TotalAmount:   decimal.MustParse("4.50"),
			Status:        domain.OrderStatusPaid,
			PaymentStatus: domain.PaymentStatusSucceeded,
			DebitEntryID:  debit.ID,
		})
		require.NoError(t, err)

		canceled, err := env.orders.CancelOrder(ctx, order.ID, "customer left")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)
		assert.Equal(t, domain.PaymentStatusRefunded, canceled.PaymentStatus)

		v, err := env.ledger.GetVendor(ctx, vendor.ID)
		require.NoError(t, err)
		assertAmount(t, "20", v.WalletBalance)

		refunds, err := env.ledger.ListEntries(ctx, vendor.ID, domain.LedgerFilter{Type: domain.LedgerEntryRefund})
		require.NoError(t, err)
		require.Len(t, refunds, 1)
		assert.Equal(t, debit.ID, refunds[0].RelatedEntryID)
	})

	t.Run("Failed refund keeps order cancelable", func(t *testing.T) {
		debit, err := env.ledger.DebitForOrder(ctx, vendor.ID, decimal.MustParse("4.50"), 101, "order")
		require.NoError(t, err)

		// a zero amount makes the ledger reject the refund
		order, err := env.store.CreateOrder(ctx, &domain.Order{
			ID:            101,
			OrderNumber:   domain.NewOrderNumber(),
			Channel:       domain.OrderChannelB2B,
			VendorID:      vendor.ID,
			Status:        domain.OrderStatusPaid,
			PaymentStatus: domain.PaymentStatusSucceeded,
			DebitEntryID:  debit.ID,
		})
		require.NoError(t, err)

		_, err = env.orders.CancelOrder(ctx, order.ID, "customer left")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		stored, err := env.orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPaid, stored.Status)
		assert.Equal(t, domain.PaymentStatusSucceeded, stored.PaymentStatus)

		_, err = env.store.UpdateOrder(ctx, order.ID, func(o *domain.Order) error {
			o.TotalAmount = decimal.MustParse("4.50")
			return nil
		})
		require.NoError(t, err)

		canceled, err := env.orders.CancelOrder(ctx, order.ID, "customer left")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)
		assert.Equal(t, domain.PaymentStatusRefunded, canceled.PaymentStatus)

		v, err := env.ledger.GetVendor(ctx, vendor.ID)
		require.NoError(t, err)
		assertAmount(t, "20", v.WalletBalance)
	})

	t.Run("Refunded order is not provisioned", func(t *testing.T) {
		order, err := env.store.CreateOrder(ctx, &domain.Order{
			ID:            102,
			OrderNumber:   domain.NewOrderNumber(),
			Channel:       domain.OrderChannelB2B,
			VendorID:      vendor.ID,
			TotalAmount:   decimal.MustParse("4.50"),
			Status:        domain.OrderStatusPaid,
			PaymentStatus: domain.PaymentStatusRefunded,
			DebitEntryID:  1,
		})
		require.NoError(t, err)

		_, err = env.orders.ProvisionOrder(ctx, order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyRefunded)

		canceled, err := env.orders.CancelOrder(ctx, order.ID, "refunded before provisioning")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)

		v, err := env.ledger.GetVendor(ctx, vendor.ID)
		require.NoError(t, err)
		assertAmount(t, "20", v.WalletBalance)
	})
}

func TestOrderService_FindStaleOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	env := newOrderEnv(t, mockCtrl, service.OrderConfig{})

	old := time.Now().Add(-time.Hour)
	for _, st := range []domain.OrderStatus{
		domain.OrderStatusPaid,
		domain.OrderStatusSyncFailed,
		domain.OrderStatusCompleted,
		domain.OrderStatusCreated,
	} {
		_, err := env.store.CreateOrder(ctx, &domain.Order{
			OrderNumber: domain.NewOrderNumber(),
			Status:      st,
			CreatedAt:   old,
			UpdatedAt:   old,
		})
		require.NoError(t, err)
	}

	list, err := env.orders.FindStaleOrders(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = env.orders.FindStaleOrders(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
