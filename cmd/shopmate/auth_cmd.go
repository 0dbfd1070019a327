package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"shopmate/internal/usecase"
)

// prompt reads one trimmed line from stdin.
func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func handleRegister(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := cmd.String("name", "", "Display name")
	email := cmd.String("email", "", "Email address, receives the OTP")
	password := cmd.String("password", "", "Password (at least 6 characters)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	message, err := deps.AuthFlow.Register(ctx, usecase.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Println(message)

	// The flow stays in this process; the OTP prompt belongs to the same
	// run as the registration.
	for {
		otp, err := prompt("Enter the OTP from your email (or 'resend'): ")
		if err != nil {
			return err
		}

		if otp == "resend" {
			message, err := deps.AuthFlow.ResendRegistrationOTP(ctx)
			if err != nil {
				return err
			}
			fmt.Println(message)

			continue
		}

		if err := deps.AuthFlow.VerifyRegistrationOTP(ctx, otp); err != nil {
			fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)

			continue
		}

		break
	}

	fmt.Println("Email verified. You can now log in with `shopmate login`.")

	return nil
}

func handleLogin(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "Email address")
	password := cmd.String("password", "", "Password")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	session, err := deps.Session.Login(ctx, usecase.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (%s)\n", session.User.Name, session.User.Email)

	return nil
}

func handleLogout(ctx context.Context, deps *appDeps) error {
	if err := deps.Session.Logout(ctx); err != nil {
		return err
	}

	fmt.Println("Signed out.")

	return nil
}

func handleWhoami(deps *appDeps) error {
	session := deps.Session.Current()
	if !session.Authenticated() {
		fmt.Println("Not signed in.")

		return nil
	}

	user := session.User
	fmt.Printf("%s <%s> role=%s verified=%t\n", user.Name, user.Email, user.Role, user.Verified)
	if user.DeliveryAddress.Complete() {
		addr := user.DeliveryAddress
		fmt.Printf("Delivery address: %s, %s, %s %s, %s\n", addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country)
	} else {
		fmt.Println("Delivery address: incomplete (required before ordering)")
	}

	return nil
}

func handleResetPassword(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := cmd.String("email", "", "Account email, receives the OTP")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := deps.AuthFlow.RequestPasswordReset(ctx, *email); err != nil {
		return err
	}
	fmt.Println("OTP sent. Check your email.")

	for {
		otp, err := prompt("Enter the OTP: ")
		if err != nil {
			return err
		}

		if err := deps.AuthFlow.VerifyPasswordResetOTP(ctx, otp); err != nil {
			fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)

			continue
		}

		break
	}

	newPassword, err := prompt("New password: ")
	if err != nil {
		return err
	}

	if err := deps.AuthFlow.ResetPassword(ctx, newPassword); err != nil {
		return err
	}

	fmt.Println("Password reset. Log in with your new password.")

	return nil
}
