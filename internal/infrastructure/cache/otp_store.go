package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/pkg/config"
)

// OTPStore keeps login codes in Redis. Three keys per phone: the code itself
// (expiring with the OTP TTL), a failed-attempt counter, and an hourly
// request counter for rate limiting.
type OTPStore struct {
	client *redis.Client
	cfg    config.OTPConfig
}

// NewOTPStore wraps an already-connected client.
func NewOTPStore(client *redis.Client, cfg config.OTPConfig) *OTPStore {
	return &OTPStore{client: client, cfg: cfg}
}

func codeKey(phone string) string     { return "otp:code:" + phone }
func attemptsKey(phone string) string { return "otp:attempts:" + phone }
func rateKey(phone string) string     { return "otp:rate:" + phone }

// Save stores a fresh code, replacing any pending one and resetting the
// attempt counter. Returns ErrTooManyRequests past the hourly quota.
func (s *OTPStore) Save(ctx context.Context, phone, code string) error {
	requests, err := s.client.Incr(ctx, rateKey(phone)).Result()
	if err != nil {
		return err
	}
	if requests == 1 {
		// first request this hour starts the window
		if err := s.client.Expire(ctx, rateKey(phone), time.Hour).Err(); err != nil {
			return err
		}
	}
	if requests > int64(s.cfg.RatePerHour) {
		return domain.ErrTooManyRequests
	}

	ttl := time.Duration(s.cfg.TTLSeconds) * time.Second
	if err := s.client.Set(ctx, codeKey(phone), code, ttl).Err(); err != nil {
		return err
	}
	return s.client.Del(ctx, attemptsKey(phone)).Err()
}

// Verify checks the code and deletes it on success. A wrong code consumes an
// attempt; after MaxAttempts the pending code is invalidated.
func (s *OTPStore) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.client.Get(ctx, codeKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrOTPExpired
	}
	if err != nil {
		return err
	}
	if stored != code {
		attempts, err := s.client.Incr(ctx, attemptsKey(phone)).Result()
		if err != nil {
			return err
		}
		if attempts == 1 {
			ttl := time.Duration(s.cfg.TTLSeconds) * time.Second
			if err := s.client.Expire(ctx, attemptsKey(phone), ttl).Err(); err != nil {
				return err
			}
		}
		if attempts >= int64(s.cfg.MaxAttempts) {
			_ = s.client.Del(ctx, codeKey(phone)).Err()
		}
		return domain.ErrOTPMismatch
	}
	return s.client.Del(ctx, codeKey(phone), attemptsKey(phone)).Err()
}
