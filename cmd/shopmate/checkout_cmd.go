package main

import (
	"context"
	"flag"
	"fmt"

	"shopmate/internal/usecase"
)

func handleProfile(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) > 0 && args[0] == "save" {
		return profileSave(ctx, args[1:], deps)
	}

	user, err := deps.Checkout.Prefill(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Name:   %s\nEmail:  %s\nMobile: %s\n", user.Name, user.Email, user.MobileNumber)
	if user.DeliveryAddress != nil {
		addr := user.DeliveryAddress
		fmt.Printf("Address: %s, %s, %s %s, %s\n", addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country)
	} else {
		fmt.Println("Address: none (run `shopmate profile save` before ordering)")
	}

	return nil
}

func profileSave(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("profile save", flag.ExitOnError)
	name := cmd.String("name", "", "Display name")
	email := cmd.String("email", "", "Email address")
	mobile := cmd.String("mobile", "", "Mobile number")
	street := cmd.String("street", "", "Street address")
	city := cmd.String("city", "", "City")
	state := cmd.String("state", "", "State")
	postal := cmd.String("postal-code", "", "Postal code")
	country := cmd.String("country", "", "Country")
	recipient := cmd.String("recipient", "", "Recipient name, if different")
	phone := cmd.String("phone", "", "Recipient phone, if different")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	// Prefill first so unset flags keep the current values; the update
	// itself is always the full profile.
	current, err := deps.Checkout.Prefill(ctx)
	if err != nil {
		return err
	}

	input := usecase.ProfileInput{
		Name:         orDefault(*name, current.Name),
		Email:        orDefault(*email, current.Email),
		MobileNumber: orDefault(*mobile, current.MobileNumber),
	}
	if current.DeliveryAddress != nil {
		addr := current.DeliveryAddress
		input.Address = usecase.AddressInput{
			FullName:    addr.FullName,
			PhoneNumber: addr.PhoneNumber,
			Street:      addr.Street,
			City:        addr.City,
			State:       addr.State,
			PostalCode:  addr.PostalCode,
			Country:     addr.Country,
		}
	}
	input.Address.FullName = orDefault(*recipient, input.Address.FullName)
	input.Address.PhoneNumber = orDefault(*phone, input.Address.PhoneNumber)
	input.Address.Street = orDefault(*street, input.Address.Street)
	input.Address.City = orDefault(*city, input.Address.City)
	input.Address.State = orDefault(*state, input.Address.State)
	input.Address.PostalCode = orDefault(*postal, input.Address.PostalCode)
	input.Address.Country = orDefault(*country, input.Address.Country)

	user, err := deps.Checkout.SaveProfile(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("Profile saved for %s.\n", user.Email)

	return nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}

	return fallback
}

func handleOrder(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("order", flag.ExitOnError)
	method := cmd.String("method", "cod", "Payment method: cod or online")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	// Online payment goes through the hosted checkout; the backend creates
	// the order once the provider confirms. Only COD places it directly.
	if *method == "online" {
		return runOnlinePayment(ctx, deps)
	}

	order, err := deps.Checkout.PlaceOrder(ctx, usecase.PlaceOrderInput{PaymentMethod: *method})
	if err != nil {
		return err
	}

	fmt.Printf("Order %s placed. Total %.2f, status %s.\n", order.ID, order.TotalAmount, order.Status)

	return nil
}
