package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devang/placeport/internal/pkg/apperrors"
)

// CodeRepository stores one-time codes in Redis. The TTL on the key is the
// expiry window; SET overwrites, which is what invalidates a superseded code.
type CodeRepository struct {
	client *redis.Client
}

// NewCodeRepository creates a new CodeRepository
func NewCodeRepository(client *redis.Client) *CodeRepository {
	return &CodeRepository{client: client}
}

func codeKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

func verifiedKey(email string) string {
	return fmt.Sprintf("otpverified:%s", email)
}

// SaveCode stores the hashed code for the email, replacing any outstanding
// one.
func (r *CodeRepository) SaveCode(ctx context.Context, email, hashedCode string, ttl time.Duration) error {
	// A fresh request also clears any verified marker from an earlier code.
	if err := r.client.Del(ctx, verifiedKey(email)).Err(); err != nil {
		return fmt.Errorf("error clearing verified marker: %w", err)
	}
	if err := r.client.Set(ctx, codeKey(email), hashedCode, ttl).Err(); err != nil {
		return fmt.Errorf("error storing code: %w", err)
	}
	return nil
}

// ConsumeCode removes and returns the hashed code. Expired and absent look
// identical: ErrCodeNotFound.
func (r *CodeRepository) ConsumeCode(ctx context.Context, email string) (string, error) {
	hashed, err := r.client.GetDel(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrCodeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error reading code: %w", err)
	}
	return hashed, nil
}

// PeekCode returns the hashed code without consuming it.
func (r *CodeRepository) PeekCode(ctx context.Context, email string) (string, error) {
	hashed, err := r.client.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrCodeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error reading code: %w", err)
	}
	return hashed, nil
}

// MarkVerified records a successful code verification so the password reset
// can complete within the same window.
func (r *CodeRepository) MarkVerified(ctx context.Context, email string, ttl time.Duration) error {
	if err := r.client.Set(ctx, verifiedKey(email), "1", ttl).Err(); err != nil {
		return fmt.Errorf("error storing verified marker: %w", err)
	}
	return nil
}

// ConsumeVerified removes the verified marker; absence means the reset flow
// never passed code verification (or the window lapsed).
func (r *CodeRepository) ConsumeVerified(ctx context.Context, email string) error {
	err := r.client.GetDel(ctx, verifiedKey(email)).Err()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrCodeNotVerified
	}
	if err != nil {
		return fmt.Errorf("error consuming verified marker: %w", err)
	}
	return nil
}
