package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect/models"
	"careconnect/services/availability"
	"careconnect/services/booking"
	"careconnect/utils"
)

// IdempotencyKeyHeader lets clients make POST /book safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

// BookingHandler serves the slot, booking and payment endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// GetSlots returns the busy periods for the coming week.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	busy, err := h.Service.ListBusySlots(c.Request.Context())
	if err != nil {
		writeBookingError(c, err, "Failed to fetch available slots")
		return
	}
	c.JSON(http.StatusOK, busy)
}

// Book creates an appointment without payment.
func (h *BookingHandler) Book(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	conf, err := h.Service.Book(c.Request.Context(), req, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		writeBookingError(c, err, "Failed to book appointment")
		return
	}
	getLogger(c).Info("appointment booked", zap.String("appointment_id", conf.AppointmentID))
	c.JSON(http.StatusOK, conf)
}

// CreateOrder opens a payment order for the checkout widget.
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var in models.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	order, err := h.Service.CreateOrder(c.Request.Context(), in)
	if errors.Is(err, booking.ErrInvalidAmount) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amount", err.Error())
		return
	}
	if err != nil {
		getLogger(c).Error("Error creating order", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create order", "")
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPayment checks a completed checkout and books the appointment.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var in models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	conf, err := h.Service.VerifyAndBook(c.Request.Context(), in)
	if err != nil {
		writeBookingError(c, err, "Failed to verify payment and create appointment")
		return
	}
	getLogger(c).Info("paid appointment booked",
		zap.String("appointment_id", conf.AppointmentID),
		zap.String("payment_id", conf.PaymentID))
	c.JSON(http.StatusOK, conf)
}

// writeBookingError maps service errors to statuses. Rejections carry no
// details; upstream failures expose the underlying message.
func writeBookingError(c *gin.Context, err error, failure string) {
	var ivErr *availability.IntervalError
	var upErr *booking.UpstreamError

	switch {
	case errors.Is(err, booking.ErrInvalidSignature):
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment signature", "")
	case errors.Is(err, booking.ErrPaymentNotCaptured):
		utils.JSONError(c, http.StatusBadRequest, "Payment not captured", "")
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "Slot no longer available", "")
	case errors.Is(err, booking.ErrBookingInProgress):
		utils.JSONError(c, http.StatusConflict, "Booking already in progress", "")
	case errors.As(err, &ivErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking interval", ivErr.Error())
	case errors.As(err, &upErr):
		utils.JSONError(c, http.StatusInternalServerError, failure, upErr.Err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, failure, err.Error())
	}
}
