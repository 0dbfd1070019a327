package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"shopmate/internal/usecase"
)

func handleOrders(ctx context.Context, deps *appDeps) error {
	orders, err := deps.Orders.History(ctx)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tPLACED\tCANCELLABLE")
	for _, order := range orders {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%t\n",
			order.ID, order.Status, order.TotalAmount,
			order.CreatedAt.Format("2006-01-02 15:04"), order.Status.Cancellable())
	}

	return w.Flush()
}

func handleCancel(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := cmd.String("id", "", "Order id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	order, err := deps.Orders.Cancel(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("Order %s is now %s.\n", order.ID, order.Status)

	return nil
}

func handleAccount(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 {
		return fmt.Errorf("account needs a subcommand: change-password, login-history, remove-address, delete")
	}

	switch args[0] {
	case "change-password":
		current, err := prompt("Current password: ")
		if err != nil {
			return err
		}
		next, err := prompt("New password: ")
		if err != nil {
			return err
		}

		if err := deps.Profile.ChangePassword(ctx, usecase.ChangePasswordInput{Current: current, Next: next}); err != nil {
			return err
		}
		fmt.Println("Password changed.")

		return nil

	case "login-history":
		records, err := deps.Profile.LoginHistory(ctx)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No login history.")

			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tIP\tSUCCESS")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%t\n", r.CreatedAt.Format("2006-01-02 15:04"), r.IPAddress, r.Success)
		}

		return w.Flush()

	case "remove-address":
		if _, err := deps.Profile.RemoveAddress(ctx); err != nil {
			return err
		}
		fmt.Println("Delivery address removed.")

		return nil

	case "delete":
		confirm, err := prompt("Type the account email to confirm deletion: ")
		if err != nil {
			return err
		}
		session := deps.Session.Current()
		if !session.Authenticated() || confirm != session.User.Email {
			return fmt.Errorf("confirmation did not match; account untouched")
		}

		if err := deps.Profile.DeleteAccount(ctx); err != nil {
			return err
		}
		fmt.Println("Account deleted.")

		return nil

	default:
		return fmt.Errorf("unknown account subcommand: %s", args[0])
	}
}
