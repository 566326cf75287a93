package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/novakart/storefront/internal/client/models"
)

// Profile prints the stored account profile.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s)\n", u.Name, u.Username)
	fmt.Printf("Email: %s", u.Email)
	if !u.EmailVerified {
		fmt.Print("  (unverified)")
	}
	fmt.Println()
	fmt.Printf("Phone: %s\n", u.Phone)
	fmt.Printf("Address: %s, %s, %s %s, %s\n", u.Address, u.City, u.State, u.ZipCode, u.Country)
	if len(u.OrderHistory) > 0 {
		fmt.Printf("Orders placed: %d\n", len(u.OrderHistory))
	}
	return nil
}

// EditProfile walks the editable fields. An empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	in := models.ProfileInput{
		Name: u.Name, Phone: u.Phone, Address: u.Address,
		City: u.City, State: u.State, Country: u.Country, ZipCode: u.ZipCode,
	}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &in.Name},
		{"Phone", &in.Phone},
		{"Address", &in.Address},
		{"City", &in.City},
		{"State", &in.State},
		{"Country", &in.Country},
		{"Zip code", &in.ZipCode},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dst), os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			*f.dst = answer
		}
	}

	if err := a.account.UpdateProfile(ctx, in); err != nil {
		log.Printf("Profile update failed: %s", err.Error())
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

// ChangeEmail starts an email change, verified against the new address.
func (a *App) ChangeEmail(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "New email", os.Stdout)
	if err != nil {
		return err
	}
	flow, err := a.account.UpdateEmail(ctx, email)
	if err != nil {
		log.Printf("Email change failed: %s", err.Error())
		return err
	}
	fmt.Println("A verification code was sent to", email)
	return a.runVerification(ctx, flow)
}

// ChangePassword rotates the password of the logged-in account.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPw, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	newPw, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	if err := a.account.ChangePassword(ctx, oldPw, newPw); err != nil {
		log.Printf("Password change failed: %s", err.Error())
		return err
	}
	fmt.Println("Password changed.")
	return nil
}

// ToggleTheme flips the persisted display theme.
func (a *App) ToggleTheme(ctx context.Context) error {
	next, err := a.theme.Toggle(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Theme: %s\n", next)
	return nil
}
