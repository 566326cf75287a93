package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/novakart/storefront/internal/client/services"
)

// runVerification drives one OTP flow to completion: the user can enter
// the code, ask for a resend (honoring the cooldown and the attempt
// budget) or abandon the flow.
func (a *App) runVerification(ctx context.Context, flow *services.OTPFlow) error {
	for {
		left, err := flow.Remaining(ctx)
		if err != nil {
			return err
		}
		if left > 0 {
			fmt.Printf("Resend available in %s.\n", left.Round(time.Second))
		} else {
			resends, _ := flow.ResendsLeft(ctx)
			fmt.Printf("Resend available (%d left).\n", resends)
		}

		choice, err := getSimpleText(a.reader, "Enter the code, 'r' to resend, or 'c' to cancel", os.Stdout)
		if err != nil {
			return err
		}

		switch choice {
		case "c":
			if err := flow.Clear(ctx); err != nil {
				return err
			}
			fmt.Println("Verification abandoned.")
			return nil

		case "r":
			switch err := flow.Resend(ctx); {
			case err == nil:
				fmt.Println("A new code was sent.")
			case errors.Is(err, services.ErrCooldownActive):
				fmt.Println(err.Error())
			case errors.Is(err, services.ErrResendLimit):
				fmt.Println("No resends left. Enter the last code you received.")
			default:
				log.Printf("Resend failed: %s", err.Error())
			}

		default:
			if err := flow.Verify(ctx, choice); err != nil {
				log.Printf("Verification failed: %s", err.Error())
				continue
			}
			fmt.Println("Verified!")
			return nil
		}
	}
}
