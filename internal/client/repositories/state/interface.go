// Package state persists the client's durable key/value state: bearer
// token, serialized user, OTP flow counters, flow emails and the theme
// preference.
package state

import "context"

// Repository is the durable key/value store behind the session and the
// OTP flows. A missing key reads as (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Reserved keys. OTP flows derive their own keys per purpose, see
// the otp package.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)
