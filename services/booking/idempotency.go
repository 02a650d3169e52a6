package booking

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"careconnect/models"
)

const (
	defaultPendingTTL = time.Minute
	// storeTimeout bounds the writes that settle a key after the attempt.
	storeTimeout = 3 * time.Second
)

// once runs fn at most once per key while the key is live. A completed key
// replays the stored confirmation. A key still in flight is rejected with
// ErrBookingInProgress. Store failures are logged and do not block a booking.
//
// The reservation lives for PendingTTL only, so an attempt that dies before
// settling its key frees it soon. Settling runs detached from ctx so that a
// client hanging up mid-request still releases or completes the key.
func (s *DefaultBookingService) once(ctx context.Context, key string, fn func() (*models.BookingConfirmation, error)) (*models.BookingConfirmation, error) {
	if key == "" {
		return fn()
	}
	store := s.store()
	log := s.logger(ctx).With(zap.String("idempotency_key", key))

	if conf, ok := s.replay(ctx, key); ok {
		log.Info("replaying stored booking")
		return conf, nil
	}

	reserved, err := store.Reserve(ctx, key, s.pendingTTL())
	if err != nil {
		log.Warn("idempotency reserve failed, continuing without it", zap.Error(err))
		return fn()
	}
	if !reserved {
		// The first attempt may have completed after the lookup above.
		if conf, ok := s.replay(ctx, key); ok {
			return conf, nil
		}
		return nil, ErrBookingInProgress
	}

	conf, err := fn()

	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()

	if err != nil {
		if relErr := store.Release(settleCtx, key); relErr != nil {
			log.Warn("idempotency release failed", zap.Error(relErr))
		}
		return nil, err
	}

	data, err := json.Marshal(conf)
	if err == nil {
		err = store.Complete(settleCtx, key, data, s.Settings.IdempotencyTTL)
	}
	if err != nil {
		log.Warn("idempotency complete failed", zap.Error(err))
	}
	return conf, nil
}

func (s *DefaultBookingService) pendingTTL() time.Duration {
	ttl := s.Settings.PendingTTL
	if ttl <= 0 {
		ttl = defaultPendingTTL
	}
	if s.Settings.IdempotencyTTL > 0 && ttl > s.Settings.IdempotencyTTL {
		ttl = s.Settings.IdempotencyTTL
	}
	return ttl
}

func (s *DefaultBookingService) replay(ctx context.Context, key string) (*models.BookingConfirmation, bool) {
	data, ok, err := s.store().Result(ctx, key)
	if err != nil {
		s.logger(ctx).Warn("idempotency lookup failed", zap.String("idempotency_key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var conf models.BookingConfirmation
	if err := json.Unmarshal(data, &conf); err != nil {
		s.logger(ctx).Warn("stored booking is unreadable", zap.String("idempotency_key", key), zap.Error(err))
		return nil, false
	}
	return &conf, true
}
