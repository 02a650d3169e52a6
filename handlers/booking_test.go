package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careconnect/mocks"
	"careconnect/models"
	"careconnect/services/availability"
	"careconnect/services/booking"
	"careconnect/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func setupRouter(svc booking.BookingService) *gin.Engine {
	h := NewBookingHandler(svc)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.GET("/", RootHandler)
	r.GET("/health", HealthHandler)
	r.GET("/slots", h.GetSlots)
	r.POST("/book", h.Book)
	r.POST("/create-order", h.CreateOrder)
	r.POST("/verify-payment", h.VerifyPayment)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Status ---

func TestRoot(t *testing.T) {
	r := setupRouter(mocks.NewBookingService(t))
	w := doJSON(t, r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Server is running"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r := setupRouter(mocks.NewBookingService(t))
	w := doJSON(t, r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

// --- Slots ---

func TestGetSlots_Success(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("ListBusySlots", mock.Anything).Return([]models.BusySlot{
		{Start: "2025-03-11T04:00:00Z", End: "2025-03-11T05:00:00Z"},
	}, nil)

	w := doJSON(t, setupRouter(svc), http.MethodGet, "/slots", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"start":"2025-03-11T04:00:00Z","end":"2025-03-11T05:00:00Z"}]`, w.Body.String())
}

func TestGetSlots_UpstreamFailure(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("ListBusySlots", mock.Anything).
		Return(nil, &booking.UpstreamError{Op: "fetch busy slots", Err: errors.New("invalid_grant")})

	w := doJSON(t, setupRouter(svc), http.MethodGet, "/slots", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Failed to fetch available slots", resp.Error)
	assert.Equal(t, "invalid_grant", resp.Details)
}

// --- Book ---

func TestBook_Success(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.MatchedBy(func(req models.BookingRequest) bool {
		return req.Name == "Asha" && req.Age == "34" && req.Mobile == "9876543210"
	}), "").Return(&models.BookingConfirmation{
		Success:       true,
		AppointmentID: "evt_1",
		Details:       models.BookingDetails{Name: "Asha", Start: "s", End: "e"},
	}, nil)

	// age and mobile arrive as numbers from some forms.
	body := `{"start":"2025-03-11T10:00:00+05:30","end":"2025-03-11T10:30:00+05:30","name":"Asha","mobile":9876543210,"age":34,"email":"a@example.com"}`
	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"appointmentId":"evt_1","details":{"name":"Asha","start":"s","end":"e"}}`, w.Body.String())
}

func TestBook_PassesIdempotencyKey(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.Anything, "retry-1").
		Return(&models.BookingConfirmation{Success: true, AppointmentID: "evt_1"}, nil)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", models.BookingRequest{Name: "Asha"}, IdempotencyKeyHeader, "retry-1")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestBook_Conflict(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.Anything, "").Return(nil, booking.ErrSlotUnavailable)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", models.BookingRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Slot no longer available", resp.Error)
	assert.Empty(t, resp.Details)
}

func TestBook_InFlight(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.Anything, "k").Return(nil, booking.ErrBookingInProgress)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", models.BookingRequest{}, IdempotencyKeyHeader, "k")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Booking already in progress", decodeError(t, w).Error)
}

func TestBook_MalformedInterval(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.Anything, "").
		Return(nil, &availability.IntervalError{Field: "start", Value: "x", Err: errors.New("bad")})

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", models.BookingRequest{Start: "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid booking interval", decodeError(t, w).Error)
}

func TestBook_BadJSON(t *testing.T) {
	svc := mocks.NewBookingService(t)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", `{"start":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_UpstreamFailure(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("Book", mock.Anything, mock.Anything, "").
		Return(nil, &booking.UpstreamError{Op: "create event", Err: errors.New("rate limited")})

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/book", models.BookingRequest{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Failed to book appointment", resp.Error)
	assert.Equal(t, "rate limited", resp.Details)
}

// --- Create order ---

func TestCreateOrder_Success(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("CreateOrder", mock.Anything, models.CreateOrderInput{Name: "Asha", Email: "a@example.com"}).
		Return(&models.OrderResponse{OrderID: "order_1", Amount: 25000, Currency: "INR", KeyID: "rzp_test_key"}, nil)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/create-order", `{"name":"Asha","email":"a@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orderId":"order_1","amount":25000,"currency":"INR","keyId":"rzp_test_key"}`, w.Body.String())
}

func TestCreateOrder_FailureHidesDetails(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, &booking.UpstreamError{Op: "create order", Err: errors.New("authentication failed")})

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/create-order", `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create order"}`, w.Body.String())
}

func TestCreateOrder_NegativeAmount(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("CreateOrder", mock.Anything, mock.MatchedBy(func(in models.CreateOrderInput) bool {
		return in.Amount != nil && *in.Amount == -500
	})).Return(nil, booking.ErrInvalidAmount)

	w := doJSON(t, setupRouter(svc), http.MethodPost, "/create-order", `{"name":"Asha","amount":-500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid amount", decodeError(t, w).Error)
}

// --- Verify payment ---

func TestVerifyPayment_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid signature", booking.ErrInvalidSignature, http.StatusBadRequest, "Invalid payment signature"},
		{"not captured", booking.ErrPaymentNotCaptured, http.StatusBadRequest, "Payment not captured"},
		{"conflict", booking.ErrSlotUnavailable, http.StatusConflict, "Slot no longer available"},
		{"upstream", &booking.UpstreamError{Op: "fetch payment", Err: errors.New("boom")}, http.StatusInternalServerError, "Failed to verify payment and create appointment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewBookingService(t)
			svc.On("VerifyAndBook", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(t, setupRouter(svc), http.MethodPost, "/verify-payment", models.VerifyPaymentRequest{PaymentID: "pay_1"})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w).Error)
		})
	}
}

func TestVerifyPayment_BindsRazorpayFields(t *testing.T) {
	svc := mocks.NewBookingService(t)
	svc.On("VerifyAndBook", mock.Anything, mock.MatchedBy(func(in models.VerifyPaymentRequest) bool {
		return in.OrderID == "order_1" && in.PaymentID == "pay_1" && in.Signature == "sig" && in.BookingDetails.Name == "Asha"
	})).Return(&models.BookingConfirmation{Success: true, AppointmentID: "evt_1", PaymentID: "pay_1"}, nil)

	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig","bookingDetails":{"name":"Asha"}}`
	w := doJSON(t, setupRouter(svc), http.MethodPost, "/verify-payment", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"appointmentId":"evt_1","paymentId":"pay_1","details":{"name":"","start":"","end":""}}`, w.Body.String())
}
