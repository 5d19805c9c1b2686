package esimgo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const defaultRetryAfter = 10 * time.Second

// Client talks to the eSIM Go v2.4 API. It places orders and looks up catalog bundles.
type Client struct {
	logger  *zap.Logger
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(cfg *config.EsimGo, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("esimgo: base url is empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("esimgo: bad base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		logger:  log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type orderItem struct {
	Type          string `json:"type"`
	Item          string `json:"item"`
	Quantity      int    `json:"quantity"`
	AllowReassign bool   `json:"allowReassign"`
}

type orderRequest struct {
	Type   string      `json:"type"`
	Assign bool        `json:"assign"`
	Order  []orderItem `json:"order"`
}

type esimInfo struct {
	ICCID       string `json:"iccid"`
	MatchingID  string `json:"matchingId"`
	SMDPAddress string `json:"smdpAddress"`
}

type orderDetail struct {
	Esims    []esimInfo `json:"esims"`
	Item     string     `json:"item"`
	Quantity int        `json:"quantity"`
}

type orderResponse struct {
	Order          []orderDetail `json:"order"`
	Status         string        `json:"status"`
	StatusMessage  string        `json:"statusMessage"`
	OrderReference string        `json:"orderReference"`
}

type country struct {
	Name string `json:"name"`
	ISO  string `json:"iso"`
}

type bundleResponse struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Countries   []country `json:"countries"`
	DataAmount  int       `json:"dataAmount"`
	Duration    int       `json:"duration"`
	Unlimited   bool      `json:"unlimited"`
	Price       float64   `json:"price"`
}

type apiError struct {
	Message string `json:"message"`
}

// CreateOrder places a transaction order with immediate eSIM assignment.
func (c *Client) CreateOrder(ctx context.Context, bundleCode string, quantity int) (*domain.ProvisioningResult, error) {
	body := orderRequest{
		Type:   "transaction",
		Assign: true,
		Order: []orderItem{
			{Type: "bundle", Item: bundleCode, Quantity: quantity},
		},
	}

	var result orderResponse
	err := c.do(ctx, http.MethodPost, "/orders", body, &result)
	if err != nil {
		perr := domain.ClassifyProvisioningError(err)
		c.logger.Error("esimgo order failed",
			zap.String("bundle", bundleCode),
			zap.String("kind", string(perr.Kind)),
			zap.Error(err))
		return nil, perr
	}

	// A 2xx answer means the order may exist upstream even when it is not reported completed.
	if result.Status != "" && !strings.EqualFold(result.Status, "completed") {
		c.logger.Warn("esimgo order in unexpected status",
			zap.String("bundle", bundleCode),
			zap.String("status", result.Status),
			zap.String("reference", result.OrderReference))
		return nil, &domain.ProvisioningError{
			Kind:    domain.ProvisioningOutcomeUnknown,
			Code:    result.Status,
			Message: fmt.Sprintf("order %s reported %s: %s", result.OrderReference, result.Status, result.StatusMessage),
		}
	}

	res := &domain.ProvisioningResult{
		ExternalOrderID: result.OrderReference,
		Status:          result.Status,
	}
	for _, d := range result.Order {
		for _, e := range d.Esims {
			res.ESIMs = append(res.ESIMs, domain.ProvisionedESIM{
				ICCID:       e.ICCID,
				MatchingID:  e.MatchingID,
				SMDPAddress: e.SMDPAddress,
			})
		}
	}

	c.logger.Debug("esimgo order placed",
		zap.String("bundle", bundleCode),
		zap.String("reference", res.ExternalOrderID),
		zap.Int("esims", len(res.ESIMs)))
	return res, nil
}

func (c *Client) GetBundleDetails(ctx context.Context, bundleCode string) (*domain.Bundle, error) {
	var result bundleResponse
	err := c.do(ctx, http.MethodGet, "/catalogue/bundle/"+url.PathEscape(bundleCode), nil, &result)
	if err != nil {
		var perr *domain.ProvisioningError
		if errors.As(err, &perr) && perr.Kind == domain.ProvisioningInvalidBundle {
			return nil, fmt.Errorf("%w: %s", domain.ErrBundleNotFound, bundleCode)
		}
		return nil, fmt.Errorf("bundle %s lookup: %w", bundleCode, err)
	}

	price, err := decimal.NewFromFloat64(result.Price)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	b := &domain.Bundle{
		Code:         result.Name,
		Name:         result.Name,
		Description:  result.Description,
		UnitPrice:    price.Round(2),
		Currency:     "USD",
		DataAmountMB: result.DataAmount,
		DurationDays: result.Duration,
		Unlimited:    result.Unlimited,
		Available:    price.IsPos(),
	}
	if b.Code == "" {
		b.Code = bundleCode
	}
	if len(result.Countries) > 0 {
		b.CountryISO = result.Countries[0].ISO
	}
	return b, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var reqBody io.Reader = http.NoBody
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error on request encode: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	requestStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, requestStr, reqBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Fire request to esimgo", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := statusError(resp)
		c.logger.Debug("unexpected status for request",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return perr
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return &domain.ProvisioningError{
			Kind:    domain.ProvisioningOutcomeUnknown,
			Code:    strconv.Itoa(resp.StatusCode),
			Message: "error on response decode",
			Err:     err,
		}
	}
	return nil
}

func transportError(err error) *domain.ProvisioningError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &domain.ProvisioningError{Kind: domain.ProvisioningTimeout, Message: err.Error(), Err: err}
	}
	return &domain.ProvisioningError{Kind: domain.ProvisioningUnavailable, Message: err.Error(), Err: err}
}

func statusError(resp *http.Response) *domain.ProvisioningError {
	var body apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	perr := &domain.ProvisioningError{
		Code:    strconv.Itoa(resp.StatusCode),
		Message: msg,
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		perr.Kind = domain.ProvisioningRateLimited
		perr.RetryAfter = retryAfter(resp.Header.Get("Retry-After"))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		perr.Kind = domain.ProvisioningAuthFailed
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		perr.Kind = domain.ProvisioningInvalidBundle
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
		perr.Kind = domain.ProvisioningTimeout
	case resp.StatusCode >= 500:
		perr.Kind = domain.ProvisioningUnavailable
	default:
		perr.Kind = domain.ProvisioningRejected
	}
	return perr
}

// retryAfter reads Retry-After in seconds, falling back to 10s.
func retryAfter(header string) time.Duration {
	sec, err := strconv.Atoi(header)
	if err != nil || sec < 0 {
		return defaultRetryAfter
	}
	return time.Duration(sec) * time.Second
}

var (
	_ port.ProvisioningGateway = (*Client)(nil)
	_ port.BundleCatalog       = (*Client)(nil)
)
