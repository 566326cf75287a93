package services

import (
	"context"
	"errors"
	"time"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

// ErrActionDenied is returned when the standing check refuses a
// sensitive account operation.
var ErrActionDenied = errors.New("action not permitted for this account")

// AccountService covers registration, login and profile maintenance.
// Mutations that change the profile refetch it afterwards, so the
// persisted copy never drifts from the server.
type AccountService struct {
	api     api.Client
	session *session.Store
	states  state.Repository
	guard   *Guard
	log     logging.Logger

	otpCooldown  time.Duration
	otpResendCap int
}

func NewAccountService(client api.Client, sess *session.Store, states state.Repository, guard *Guard, log logging.Logger, otpCooldown time.Duration, otpResendCap int) *AccountService {
	return &AccountService{
		api:          client,
		session:      sess,
		states:       states,
		guard:        guard,
		log:          log,
		otpCooldown:  otpCooldown,
		otpResendCap: otpResendCap,
	}
}

// Signup registers an account and starts the email verification flow
// for it. The account stays unverified until the flow completes.
func (s *AccountService) Signup(ctx context.Context, input models.SignupInput) (*OTPFlow, error) {
	if err := s.api.Signup(ctx, input); err != nil {
		return nil, err
	}
	flow := s.SignupVerificationFlow()
	if err := flow.Begin(ctx, input.Email); err != nil {
		return nil, err
	}
	return flow, nil
}

// SignupVerificationFlow returns the signup verification flow, for
// resuming one interrupted by a restart.
func (s *AccountService) SignupVerificationFlow() *OTPFlow {
	return NewOTPFlow(PurposeSignupVerify, s.states, s.log, s.otpCooldown, s.otpResendCap, OTPOps{
		Verify: s.api.VerifyEmailOTP,
		Resend: s.api.ResendEmailOTP,
	})
}

// Login authenticates, persists the session and loads the full profile.
// A failed profile fetch keeps the session; bootstrap retries later.
func (s *AccountService) Login(ctx context.Context, loginIdentifier, password string) (*models.User, error) {
	res, err := s.api.Login(ctx, loginIdentifier, password)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetToken(ctx, res.Token); err != nil {
		return nil, err
	}

	u, err := s.api.GetCurrentUser(ctx)
	if err != nil || u == nil {
		s.log.Warn(ctx, "logged in but could not load profile", "err", err)
		return nil, nil
	}
	if err := s.session.SetCurrentUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout ends the session locally. The bearer token is stateless
// server-side; discarding it is the whole operation.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.session.ClearUser(ctx)
}

// UpdateProfile edits the profile fields and refetches the result.
func (s *AccountService) UpdateProfile(ctx context.Context, input models.ProfileInput) error {
	if !s.guard.Check(ctx) {
		return ErrActionDenied
	}
	if err := s.api.UpdateProfile(ctx, input); err != nil {
		return err
	}
	return s.refreshUser(ctx)
}

// UpdateEmail requests an email change and starts a verification flow
// against the new address. The change takes effect only once verified.
func (s *AccountService) UpdateEmail(ctx context.Context, newEmail string) (*OTPFlow, error) {
	if !s.guard.Check(ctx) {
		return nil, ErrActionDenied
	}
	if err := s.api.UpdateEmail(ctx, newEmail); err != nil {
		return nil, err
	}
	flow := s.EmailChangeFlow()
	if err := flow.Begin(ctx, newEmail); err != nil {
		return nil, err
	}
	return flow, nil
}

// EmailChangeFlow returns the email-change verification flow. Verifying
// refetches the profile, so the new address lands in the session.
func (s *AccountService) EmailChangeFlow() *OTPFlow {
	return NewOTPFlow(PurposeEmailChange, s.states, s.log, s.otpCooldown, s.otpResendCap, OTPOps{
		Verify: func(ctx context.Context, email, otp string) error {
			if err := s.api.VerifyEmailUpdateOTP(ctx, email, otp); err != nil {
				return err
			}
			return s.refreshUser(ctx)
		},
		Resend: s.api.ResendEmailOTP,
	})
}

// ChangePassword rotates the password for a logged-in account.
func (s *AccountService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if !s.guard.Check(ctx) {
		return ErrActionDenied
	}
	return s.api.ChangePassword(ctx, oldPassword, newPassword)
}

// ForgotPassword starts the logged-out password reset chain: a code is
// mailed, verified with the flow, and then ResetPassword sets the new
// password.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) (*OTPFlow, error) {
	if err := s.api.InitiateResetPassword(ctx, email); err != nil {
		return nil, err
	}
	flow := s.PasswordResetFlow()
	if err := flow.Begin(ctx, email); err != nil {
		return nil, err
	}
	return flow, nil
}

// PasswordResetFlow returns the reset verification flow. A resend runs
// the initiate mutation again, which issues a fresh code. When a
// session exists the verify step re-checks account standing first; a
// logged-out reset has no standing to check.
func (s *AccountService) PasswordResetFlow() *OTPFlow {
	return NewOTPFlow(PurposePasswordReset, s.states, s.log, s.otpCooldown, s.otpResendCap, OTPOps{
		Verify: func(ctx context.Context, email, otp string) error {
			if s.session.IsAuthenticated() && !s.guard.Check(ctx) {
				return ErrActionDenied
			}
			return s.api.VerifyPasswordResetOTP(ctx, email, otp)
		},
		Resend: s.api.InitiateResetPassword,
	})
}

// ResetPassword completes the chain after the code was accepted.
func (s *AccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	return s.api.ResetPassword(ctx, email, newPassword)
}

func (s *AccountService) refreshUser(ctx context.Context) error {
	u, err := s.api.GetCurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile refresh failed", "err", err)
		return nil
	}
	return s.session.SetCurrentUser(ctx, u)
}
