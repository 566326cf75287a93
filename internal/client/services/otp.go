package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/logging"
)

// OTPPurpose namespaces the persisted flow state, so a half-finished
// signup verification never bleeds into an order verification.
type OTPPurpose string

const (
	PurposeSignupVerify  OTPPurpose = "signup-verify"
	PurposeEmailChange   OTPPurpose = "email-change-verify"
	PurposeOrderVerify   OTPPurpose = "order-verify"
	PurposePasswordReset OTPPurpose = "password-reset-verify"
)

var (
	// ErrCooldownActive is returned by Resend while the cooldown runs.
	ErrCooldownActive = errors.New("resend cooldown active")
	// ErrResendLimit is returned by Resend once the resend cap is spent.
	ErrResendLimit = errors.New("resend limit reached")
	// ErrNoActiveFlow is returned when no verification is in progress.
	ErrNoActiveFlow = errors.New("no verification in progress")
)

// OTPOps are the two server operations a flow drives. Resend may be nil
// for flows whose server side offers no resend.
type OTPOps struct {
	Verify func(ctx context.Context, email, otp string) error
	Resend func(ctx context.Context, email string) error
}

// OTPFlow runs one email verification: a cooldown between resends, a
// hard cap on resend attempts, and flow state persisted under
// purpose-scoped keys so an interrupted flow survives a restart.
//
// The cooldown is stored as an absolute deadline, not a countdown, so
// restarting the client cannot shorten it.
type OTPFlow struct {
	purpose   OTPPurpose
	states    state.Repository
	log       logging.Logger
	ops       OTPOps
	cooldown  time.Duration
	resendCap int
	now       func() time.Time
}

func NewOTPFlow(purpose OTPPurpose, states state.Repository, log logging.Logger, cooldown time.Duration, resendCap int, ops OTPOps) *OTPFlow {
	return &OTPFlow{
		purpose:   purpose,
		states:    states,
		log:       log,
		ops:       ops,
		cooldown:  cooldown,
		resendCap: resendCap,
		now:       time.Now,
	}
}

func (f *OTPFlow) key(suffix string) string {
	return fmt.Sprintf("otp:%s:%s", f.purpose, suffix)
}

// Begin records a freshly started flow. The server has just sent the
// first code, so the cooldown starts immediately and the resend budget
// is full.
func (f *OTPFlow) Begin(ctx context.Context, email string) error {
	if err := f.states.Set(ctx, f.key("email"), []byte(email)); err != nil {
		return err
	}
	if err := f.states.Set(ctx, f.key("resend_count"), []byte("0")); err != nil {
		return err
	}
	return f.setDeadline(ctx)
}

// Resume returns the email of an interrupted flow, or ErrNoActiveFlow.
func (f *OTPFlow) Resume(ctx context.Context) (string, error) {
	raw, err := f.states.Get(ctx, f.key("email"))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", ErrNoActiveFlow
	}
	return string(raw), nil
}

// Remaining reports how long until the next resend is allowed. Zero
// means a resend may be attempted now.
func (f *OTPFlow) Remaining(ctx context.Context) (time.Duration, error) {
	raw, err := f.states.Get(ctx, f.key("cooldown_until"))
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	unix, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, nil
	}
	left := time.Unix(unix, 0).Sub(f.now())
	if left < 0 {
		return 0, nil
	}
	return left, nil
}

// ResendsLeft reports how many resends remain in the budget.
func (f *OTPFlow) ResendsLeft(ctx context.Context) (int, error) {
	used, err := f.resendCount(ctx)
	if err != nil {
		return 0, err
	}
	left := f.resendCap - used
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Resend asks the server to send a new code. It refuses while the
// cooldown runs or once the cap is spent; a successful resend consumes
// one attempt and restarts the full cooldown. A failed server call
// consumes nothing.
func (f *OTPFlow) Resend(ctx context.Context) error {
	if f.ops.Resend == nil {
		return ErrNoActiveFlow
	}
	email, err := f.Resume(ctx)
	if err != nil {
		return err
	}

	left, err := f.Remaining(ctx)
	if err != nil {
		return err
	}
	if left > 0 {
		return fmt.Errorf("%w: %s left", ErrCooldownActive, left.Round(time.Second))
	}

	used, err := f.resendCount(ctx)
	if err != nil {
		return err
	}
	if used >= f.resendCap {
		return ErrResendLimit
	}

	if err := f.ops.Resend(ctx, email); err != nil {
		return err
	}

	if err := f.states.Set(ctx, f.key("resend_count"), []byte(strconv.Itoa(used+1))); err != nil {
		return err
	}
	return f.setDeadline(ctx)
}

// Verify submits the code. Success finishes the flow and clears its
// state; failure leaves the cooldown and resend budget untouched, since
// a wrong code is not a resend.
func (f *OTPFlow) Verify(ctx context.Context, otp string) error {
	email, err := f.Resume(ctx)
	if err != nil {
		return err
	}
	if err := f.ops.Verify(ctx, email, otp); err != nil {
		return err
	}
	return f.Clear(ctx)
}

// Clear abandons the flow.
func (f *OTPFlow) Clear(ctx context.Context) error {
	for _, suffix := range []string{"email", "resend_count", "cooldown_until"} {
		if err := f.states.Delete(ctx, f.key(suffix)); err != nil {
			return err
		}
	}
	return nil
}

func (f *OTPFlow) setDeadline(ctx context.Context) error {
	deadline := f.now().Add(f.cooldown).Unix()
	return f.states.Set(ctx, f.key("cooldown_until"), []byte(strconv.FormatInt(deadline, 10)))
}

func (f *OTPFlow) resendCount(ctx context.Context) (int, error) {
	raw, err := f.states.Get(ctx, f.key("resend_count"))
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, nil
	}
	return n, nil
}
