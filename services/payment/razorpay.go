package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"careconnect/models"
)

// RazorpayGateway implements Gateway with the Razorpay SDK.
type RazorpayGateway struct {
	client  *razorpay.Client
	timeout time.Duration
	logger  *zap.Logger
}

func NewRazorpayGateway(keyID, keySecret string, timeout time.Duration, logger *zap.Logger) *RazorpayGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RazorpayGateway{
		client:  razorpay.NewClient(keyID, keySecret),
		timeout: timeout,
		logger:  logger,
	}
}

type sdkResult struct {
	body map[string]interface{}
	err  error
}

// call runs a blocking SDK request and gives up when ctx is done or the
// per-call timeout expires. The SDK has no context support, so an abandoned
// request finishes in the background.
func (g *RazorpayGateway) call(ctx context.Context, fn func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	done := make(chan sdkResult, 1)
	go func() {
		body, err := fn()
		done <- sdkResult{body: body, err: err}
	}()

	select {
	case res := <-done:
		return res.body, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	body, err := g.call(ctx, func() (map[string]interface{}, error) {
		return g.client.Order.Create(data, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}

	order := orderFromBody(body)
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order create returned no id")
	}
	g.logger.Info("razorpay order created",
		zap.String("order_id", order.ID),
		zap.Int64("amount", order.Amount),
		zap.String("receipt", order.Receipt))
	return order, nil
}

func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	body, err := g.call(ctx, func() (map[string]interface{}, error) {
		return g.client.Payment.Fetch(paymentID, nil, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}
	p := paymentFromBody(body)
	g.logger.Debug("razorpay payment fetched",
		zap.String("payment_id", p.ID),
		zap.String("status", p.Status))
	return p, nil
}

func orderFromBody(body map[string]interface{}) *models.Order {
	return &models.Order{
		ID:       stringField(body, "id"),
		Amount:   int64Field(body, "amount"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}
}

func paymentFromBody(body map[string]interface{}) *models.Payment {
	return &models.Payment{
		ID:       stringField(body, "id"),
		OrderID:  stringField(body, "order_id"),
		Status:   stringField(body, "status"),
		Amount:   int64Field(body, "amount"),
		Currency: stringField(body, "currency"),
	}
}

func stringField(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

// int64Field reads a numeric field from a decoded JSON body.
func int64Field(body map[string]interface{}, key string) int64 {
	switch v := body[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}
