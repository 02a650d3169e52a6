package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"careconnect/models"
)

type Gateway struct {
	mock.Mock
}

func NewGateway(t mock.TestingT) *Gateway {
	m := &Gateway{}
	m.Test(t)
	return m
}

func (m *Gateway) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *Gateway) FetchPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	p, _ := args.Get(0).(*models.Payment)
	return p, args.Error(1)
}
