package models

// CreateOrderInput is the body of POST /create-order. A missing Amount means
// the configured default.
type CreateOrderInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Amount *int64 `json:"amount"`
}

// OrderRequest is what is sent to the payment gateway. Amount is in minor
// units (paise for INR).
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the gateway's view of a payable order.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// Payment is the gateway's view of a single payment attempt.
type Payment struct {
	ID       string
	OrderID  string
	Status   string
	Amount   int64
	Currency string
}

// OrderResponse is returned to the client so it can open the checkout.
// It carries the public key id only.
type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest is the body of POST /verify-payment.
type VerifyPaymentRequest struct {
	OrderID        string         `json:"razorpay_order_id"`
	PaymentID      string         `json:"razorpay_payment_id"`
	Signature      string         `json:"razorpay_signature"`
	BookingDetails BookingRequest `json:"bookingDetails"`
}
