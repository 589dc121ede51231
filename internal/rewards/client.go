package rewards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/utils"

	"github.com/shopspring/decimal"
)

const (
	opUpdateProfile   = "update_profile"
	opEvaluateSession = "evaluate_session"
	opConfirmLoyalty  = "confirm_loyalty"
)

type Config struct {
	BaseURL string
	APIKey  string
	// Timeout ограничивает один вызов вместе со всеми повторами
	Timeout time.Duration
	Retry   utils.RetryConfig
}

// StatusError ответ движка с кодом вне 2xx.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	retry      utils.RetryConfig
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		retry:   cfg.Retry,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// UpdateProfile синхронизирует профиль покупателя с движком наград.
func (c *Client) UpdateProfile(ctx context.Context, cart entities.Cart) error {
	path := "/v1/profiles/" + integrationID(cart.UserID)
	if err := c.call(ctx, opUpdateProfile, http.MethodPut, path, profileFromCart(cart), nil, true); err != nil {
		return fmt.Errorf("%w: update profile: %w", entities.ErrUpstream, err)
	}
	return nil
}

// EvaluateSession возвращает скидки и состояние лояльности для корзины.
func (c *Client) EvaluateSession(ctx context.Context, cart entities.Cart) (entities.RewardsOutcome, error) {
	var res sessionResponse
	if err := c.call(ctx, opEvaluateSession, http.MethodPost, "/v1/sessions", sessionFromCart(cart), &res, true); err != nil {
		return entities.RewardsOutcome{}, fmt.Errorf("%w: evaluate session: %w", entities.ErrUpstream, err)
	}
	return res.toEntity(), nil
}

// ConfirmLoyalty подтверждает списание баллов. Запрос не идемпотентен
// и отправляется ровно один раз.
func (c *Client) ConfirmLoyalty(ctx context.Context, userID int64, total decimal.Decimal) error {
	path := fmt.Sprintf("/v1/loyalty/%s/confirm", integrationID(userID))
	body := loyaltyConfirmRequest{TotalAmount: number(total)}
	if err := c.call(ctx, opConfirmLoyalty, http.MethodPost, path, body, nil, false); err != nil {
		return fmt.Errorf("%w: confirm loyalty: %w", entities.ErrUpstream, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out any, retry bool) error {
	start := time.Now()
	defer func() {
		gatewayRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	attempt := func(ctx context.Context) error {
		return c.do(ctx, op, method, path, payload, out)
	}
	if !retry {
		return attempt(ctx)
	}
	return utils.Retry(ctx, c.retry, attempt)
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return utils.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Authorization", "ApiKey-v1 "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		gatewayRequestsTotal.WithLabelValues(op, "error").Inc()
		if ctx.Err() != nil {
			return utils.Permanent(err)
		}
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	gatewayRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		statusErr := &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		if retryable(resp.StatusCode) {
			return statusErr
		}
		return utils.Permanent(statusErr)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return utils.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
