package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"shopmate/internal/domain/entity"
	"shopmate/internal/usecase"
)

func handleAdmin(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 {
		return fmt.Errorf("admin needs a subcommand: dashboard, products, users, orders, tickets, faqs")
	}

	switch args[0] {
	case "dashboard":
		return adminDashboard(ctx, deps)
	case "products":
		return adminProducts(ctx, args[1:], deps)
	case "users":
		return adminUsers(ctx, args[1:], deps)
	case "orders":
		return adminOrders(ctx, args[1:], deps)
	case "tickets":
		return adminTickets(ctx, args[1:], deps)
	case "faqs":
		return adminFAQs(ctx, args[1:], deps)
	default:
		return fmt.Errorf("unknown admin subcommand: %s", args[0])
	}
}

func adminDashboard(ctx context.Context, deps *appDeps) error {
	stats, err := deps.Admin.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Products: %d  Orders: %d  Users: %d  Open tickets: %d\n",
		stats.TotalProducts, stats.TotalOrders, stats.TotalUsers, stats.OpenTickets)

	if len(stats.RecentOrders) > 0 {
		fmt.Println("Recent orders:")
		for _, order := range stats.RecentOrders {
			fmt.Printf("  %s  %.2f  %s\n", order.ID, order.TotalAmount, order.Status)
		}
	}

	return nil
}

func adminProducts(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 {
		return fmt.Errorf("admin products needs: create, update, or delete")
	}

	switch args[0] {
	case "create", "update":
		cmd := flag.NewFlagSet("admin products "+args[0], flag.ExitOnError)
		id := cmd.String("id", "", "Product id (update only)")
		name := cmd.String("name", "", "Product name")
		price := cmd.Float64("price", 0, "Unit price")
		description := cmd.String("description", "", "Description")
		category := cmd.String("category", "", "Category")
		stock := cmd.Int("stock", 0, "Stock on hand")
		images := cmd.String("images", "", "Comma-separated image URLs")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}

		input := usecase.ProductEditInput{
			Name:        *name,
			Price:       *price,
			Description: *description,
			Category:    *category,
			Stock:       *stock,
		}
		if *images != "" {
			input.Images = strings.Split(*images, ",")
		}

		var (
			products []*entity.Product
			err      error
		)
		if args[0] == "create" {
			products, err = deps.Admin.CreateProduct(ctx, input)
		} else {
			products, err = deps.Admin.UpdateProduct(ctx, *id, input)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Done. Catalog now has %d products.\n", len(products))

		return nil

	case "delete":
		cmd := flag.NewFlagSet("admin products delete", flag.ExitOnError)
		id := cmd.String("id", "", "Product id")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}

		products, err := deps.Admin.DeleteProduct(ctx, *id)
		if err != nil {
			return err
		}

		fmt.Printf("Deleted. Catalog now has %d products.\n", len(products))

		return nil

	default:
		return fmt.Errorf("unknown admin products subcommand: %s", args[0])
	}
}

func adminUsers(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) > 0 && args[0] == "delete" {
		cmd := flag.NewFlagSet("admin users delete", flag.ExitOnError)
		id := cmd.String("id", "", "User id")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}

		users, err := deps.Admin.DeleteUser(ctx, *id)
		if err != nil {
			return err
		}

		fmt.Printf("Deleted. %d accounts remain.\n", len(users))

		return nil
	}

	users, err := deps.Admin.Users(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tVERIFIED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.Verified)
	}

	return w.Flush()
}

func adminOrders(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) > 0 && args[0] == "set-status" {
		cmd := flag.NewFlagSet("admin orders set-status", flag.ExitOnError)
		id := cmd.String("id", "", "Order id")
		status := cmd.String("status", "", "New status")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}

		order, err := deps.Admin.UpdateOrderStatus(ctx, *id, entity.OrderStatus(*status))
		if err != nil {
			return err
		}

		fmt.Printf("Order %s is now %s.\n", order.ID, order.Status)

		return nil
	}

	orders, err := deps.Admin.Orders(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tPLACED")
	for _, order := range orders {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n",
			order.ID, order.Status, order.TotalAmount, order.CreatedAt.Format("2006-01-02 15:04"))
	}

	return w.Flush()
}

func adminFAQs(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 || args[0] != "add" {
		return fmt.Errorf("admin faqs needs: add")
	}

	cmd := flag.NewFlagSet("admin faqs add", flag.ExitOnError)
	question := cmd.String("question", "", "The question")
	answer := cmd.String("answer", "", "The answer")
	category := cmd.String("category", "", "Category, e.g. shipping")
	if err := cmd.Parse(args[1:]); err != nil {
		return err
	}

	faqs, err := deps.Admin.PublishFAQ(ctx, usecase.FAQEditInput{
		Question: *question,
		Answer:   *answer,
		Category: *category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Published. %d FAQs live.\n", len(faqs))

	return nil
}

func adminTickets(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) > 0 {
		switch args[0] {
		case "set-status":
			cmd := flag.NewFlagSet("admin tickets set-status", flag.ExitOnError)
			id := cmd.String("id", "", "Ticket id")
			status := cmd.String("status", "", "New status: open, in_progress, resolved, closed")
			if err := cmd.Parse(args[1:]); err != nil {
				return err
			}

			ticket, err := deps.Admin.UpdateTicketStatus(ctx, *id, entity.TicketStatus(*status))
			if err != nil {
				return err
			}

			fmt.Printf("Ticket %s is now %s.\n", ticket.ID, ticket.Status)

			return nil

		case "reply":
			cmd := flag.NewFlagSet("admin tickets reply", flag.ExitOnError)
			id := cmd.String("id", "", "Ticket id")
			message := cmd.String("message", "", "Reply text")
			if err := cmd.Parse(args[1:]); err != nil {
				return err
			}

			if _, err := deps.Admin.ReplyTicket(ctx, *id, *message); err != nil {
				return err
			}

			fmt.Println("Reply sent.")

			return nil
		}
	}

	tickets, err := deps.Admin.Tickets(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tFROM\tSUBJECT")
	for _, t := range tickets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Email, t.Subject)
	}

	return w.Flush()
}
