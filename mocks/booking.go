package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"careconnect/models"
)

type BookingService struct {
	mock.Mock
}

func NewBookingService(t mock.TestingT) *BookingService {
	m := &BookingService{}
	m.Test(t)
	return m
}

func (m *BookingService) ListBusySlots(ctx context.Context) ([]models.BusySlot, error) {
	args := m.Called(ctx)
	busy, _ := args.Get(0).([]models.BusySlot)
	return busy, args.Error(1)
}

func (m *BookingService) Book(ctx context.Context, req models.BookingRequest, idempotencyKey string) (*models.BookingConfirmation, error) {
	args := m.Called(ctx, req, idempotencyKey)
	c, _ := args.Get(0).(*models.BookingConfirmation)
	return c, args.Error(1)
}

func (m *BookingService) CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.OrderResponse, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*models.OrderResponse)
	return o, args.Error(1)
}

func (m *BookingService) VerifyAndBook(ctx context.Context, in models.VerifyPaymentRequest) (*models.BookingConfirmation, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*models.BookingConfirmation)
	return c, args.Error(1)
}
