// Package mocks holds testify doubles for the collaborators.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"careconnect/models"
)

type Calendar struct {
	mock.Mock
}

func NewCalendar(t mock.TestingT) *Calendar {
	m := &Calendar{}
	m.Test(t)
	return m
}

func (m *Calendar) QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]models.BusySlot, error) {
	args := m.Called(ctx, timeMin, timeMax)
	busy, _ := args.Get(0).([]models.BusySlot)
	return busy, args.Error(1)
}

func (m *Calendar) CreateEvent(ctx context.Context, in models.EventInput) (*models.CalendarEvent, error) {
	args := m.Called(ctx, in)
	ev, _ := args.Get(0).(*models.CalendarEvent)
	return ev, args.Error(1)
}
