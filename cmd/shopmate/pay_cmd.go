package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	deliveryhttp "shopmate/internal/delivery/http"
	"shopmate/internal/domain/entity"
	"shopmate/internal/usecase"
)

func handlePay(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) > 0 && args[0] == "check" {
		return payCheck(ctx, args[1:], deps)
	}

	return runOnlinePayment(ctx, deps)
}

// runOnlinePayment opens a hosted checkout for the cart, hands the URL to
// the shopper, and polls until the payment settles or the attempt budget
// runs out.
func runOnlinePayment(ctx context.Context, deps *appDeps) error {
	hostURL := deps.Config.Payment.HostURL
	if hostURL == "" {
		hostURL = fmt.Sprintf("http://localhost:%d", deps.Config.Payment.CallbackPort)
	}

	session, err := deps.Payment.OpenCheckout(ctx, hostURL)
	if err != nil {
		return err
	}

	fmt.Printf("Checkout session %s for %.2f\n", session.SessionID, session.Amount)
	fmt.Printf("Open this URL to pay:\n  %s\n", session.CheckoutURL)

	// A QR of the same URL, for paying from a phone.
	if png, err := deps.QRCode.PaymentQR(session.CheckoutURL); err == nil {
		qrPath := filepath.Join(os.TempDir(), "shopmate-checkout.png")
		if writeErr := os.WriteFile(qrPath, png, 0o600); writeErr == nil {
			fmt.Printf("QR code saved to %s\n", qrPath)
		}
	}

	// The local listener catches the provider's redirect so the terminal
	// knows the shopper finished without copying anything.
	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := deps.Callback.Serve(serveCtx); err != nil {
			fmt.Fprintf(os.Stderr, "callback listener: %v\n", err)
		}
	}()

	fmt.Println("Waiting for the payment to settle...")

	return awaitSettlement(ctx, deps.Payment, deps.Callback.Events(), session.SessionID, os.Stdout)
}

// awaitSettlement races the status poller against the shopper's redirect
// landing on the callback listener. A success redirect triggers an immediate
// status check instead of waiting out the next interval; a cancel redirect
// abandons the poll and leaves the cart untouched.
func awaitSettlement(ctx context.Context, payment usecase.PaymentUsecase, events <-chan deliveryhttp.CallbackEvent, sessionID string, out io.Writer) error {
	pollCtx, stopPoll := context.WithCancel(ctx)
	defer stopPoll()

	type pollResult struct {
		outcome *usecase.PollOutcome
		err     error
	}
	done := make(chan pollResult, 1)
	go func() {
		outcome, err := payment.Poll(pollCtx, sessionID)
		done <- pollResult{outcome: outcome, err: err}
	}()

	for {
		select {
		case event := <-events:
			if event.SessionID != "" && event.SessionID != sessionID {
				continue
			}
			if event.Cancelled {
				stopPoll()
				<-done
				fmt.Fprintln(out, "Payment cancelled. Your cart is untouched.")

				return nil
			}
			// The redirect landed, so the provider is finished with the
			// shopper. Check right away instead of waiting out the interval.
			status, err := payment.CheckOnce(ctx, sessionID)
			if err == nil && status.PaymentStatus == "paid" {
				stopPoll()
				<-done
				fmt.Fprintln(out, "Payment confirmed. Your order is on its way.")

				return nil
			}
		case result := <-done:
			if result.err != nil {
				return result.err
			}

			switch result.outcome.State {
			case entity.PaymentPaid:
				fmt.Fprintln(out, "Payment confirmed. Your order is on its way.")
			case entity.PaymentExpired:
				fmt.Fprintln(out, "The payment session expired. Your cart is untouched; try again when ready.")
			case entity.PaymentTimeout:
				fmt.Fprintf(out, "Still pending after %d checks. The payment may yet settle;\n", result.outcome.Attempts)
				fmt.Fprintf(out, "run `shopmate pay check -session %s` to re-check.\n", sessionID)
			default:
			}

			return nil
		}
	}
}

// payCheck is the manual re-check after a timeout.
func payCheck(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("pay check", flag.ExitOnError)
	sessionID := cmd.String("session", "", "Checkout session id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	status, err := deps.Payment.CheckOnce(ctx, *sessionID)
	if err != nil {
		return err
	}

	if status.PaymentStatus == "paid" {
		fmt.Println("Payment confirmed.")

		return nil
	}

	fmt.Printf("Payment status: %s (session %s)\n", status.PaymentStatus, *sessionID)

	return nil
}
