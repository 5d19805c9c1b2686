package http

import (
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/govalues/decimal"
)

type orderRequest struct {
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	BundleCode    string `json:"bundle_code" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type failRequest struct {
	Code    string `json:"code" binding:"required"`
	Message string `json:"message"`
}

type paymentResponse struct {
	Order         *domain.Order         `json:"order"`
	PaymentIntent *domain.PaymentIntent `json:"payment_intent"`
}

type topUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type topUpResponse struct {
	VendorID      uint64                `json:"vendor_id"`
	Amount        decimal.Decimal       `json:"amount"`
	PaymentIntent *domain.PaymentIntent `json:"payment_intent"`
}

type adjustmentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" binding:"required"`
}

type reversalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type vendorRequest struct {
	Name        string             `json:"name" binding:"required"`
	Email       string             `json:"email" binding:"required,email"`
	BillingMode domain.BillingMode `json:"billing_mode" binding:"required"`
	CreditLimit decimal.Decimal    `json:"credit_limit"`
	Currency    string             `json:"currency"`
}

type vendorStatusRequest struct {
	Status domain.VendorStatus `json:"status" binding:"required"`
}

type balanceResponse struct {
	VendorID           uint64             `json:"vendor_id"`
	BillingMode        domain.BillingMode `json:"billing_mode"`
	Currency           string             `json:"currency"`
	WalletBalance      decimal.Decimal    `json:"wallet_balance"`
	CreditLimit        decimal.Decimal    `json:"credit_limit"`
	OutstandingBalance decimal.Decimal    `json:"outstanding_balance"`
	AvailableCredit    *decimal.Decimal   `json:"available_credit,omitempty"`
}

func newBalanceResponse(v *domain.Vendor) (balanceResponse, error) {
	resp := balanceResponse{
		VendorID:           v.ID,
		BillingMode:        v.BillingMode,
		Currency:           v.Currency,
		WalletBalance:      v.WalletBalance,
		CreditLimit:        v.CreditLimit,
		OutstandingBalance: v.OutstandingBalance,
	}
	if v.BillingMode == domain.BillingModePostpaid {
		avail, err := v.AvailableCredit()
		if err != nil {
			return balanceResponse{}, err
		}
		resp.AvailableCredit = &avail
	}
	return resp, nil
}

type staleOrdersResponse struct {
	MinutesOld int             `json:"minutes_old"`
	Orders     []*domain.Order `json:"orders"`
}

type tokenRequest struct {
	ActorType domain.ActorType `json:"actor_type" binding:"required"`
	ActorID   uint64           `json:"actor_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type webhookResponse struct {
	Received bool `json:"received"`
}
