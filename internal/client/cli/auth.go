package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/novakart/storefront/internal/client/models"
)

// getSimpleText, getInt and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getInt = GetInt
var getPassword = GetPassword

// Register walks the signup form, creates the account and runs the email
// verification flow. The account stays unverified (and cannot check out)
// until the code is accepted.
func (a *App) Register(ctx context.Context) error {
	var in models.SignupInput
	var err error

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter name", &in.Name},
		{"Enter username", &in.Username},
		{"Enter email", &in.Email},
		{"Enter phone", &in.Phone},
		{"Enter address", &in.Address},
		{"Enter city", &in.City},
		{"Enter state", &in.State},
		{"Enter country", &in.Country},
		{"Enter zip code", &in.ZipCode},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, os.Stdout); err != nil {
			return err
		}
	}
	if in.Password, err = getPassword(os.Stdout, "Enter password"); err != nil {
		return err
	}

	flow, err := a.account.Signup(ctx, in)
	if err != nil {
		log.Printf("Signup failed: %s", err.Error())
		return err
	}

	fmt.Println("Account created. A verification code was sent to", in.Email)
	return a.runVerification(ctx, flow)
}

// Login prompts for credentials and authenticates. The identifier may be
// a username or an email.
func (a *App) Login(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	u, err := a.account.Login(ctx, id, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}
	if u != nil {
		fmt.Printf("Welcome back, %s!\n", u.Username)
	} else {
		fmt.Println("Logged in.")
	}
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// ForgotPassword runs the logged-out reset chain: request a code, verify
// it, then set the new password.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}

	flow, err := a.account.ForgotPassword(ctx, email)
	if err != nil {
		// an interrupted flow for the same address can be resumed
		pending, resumeErr := a.account.PasswordResetFlow().Resume(ctx)
		if resumeErr != nil || pending != email {
			log.Printf("Could not start password reset: %s", err.Error())
			return err
		}
		flow = a.account.PasswordResetFlow()
	}

	if err := a.runVerification(ctx, flow); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Re-enter new password")
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Println("Passwords do not match. Run forgot again to retry.")
		return nil
	}
	if err := a.account.ResetPassword(ctx, email, password); err != nil {
		log.Printf("Password reset failed: %s", err.Error())
		return err
	}
	fmt.Println("Password updated. You can log in now.")
	return nil
}
