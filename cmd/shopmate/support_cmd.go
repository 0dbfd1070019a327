package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"shopmate/internal/usecase"
)

func handleSupport(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 {
		return fmt.Errorf("support needs a subcommand: open, list, show, reply, faqs")
	}

	switch args[0] {
	case "open":
		return supportOpen(ctx, args[1:], deps)
	case "list":
		return supportList(ctx, deps)
	case "show":
		return supportShow(ctx, args[1:], deps)
	case "reply":
		return supportReply(ctx, args[1:], deps)
	case "faqs":
		return supportFAQs(ctx, args[1:], deps)
	default:
		return fmt.Errorf("unknown support subcommand: %s", args[0])
	}
}

func supportOpen(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("support open", flag.ExitOnError)
	name := cmd.String("name", "", "Contact name (defaults to the signed-in account)")
	email := cmd.String("email", "", "Contact email (defaults to the signed-in account)")
	subject := cmd.String("subject", "", "Subject line")
	description := cmd.String("description", "", "What happened")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	ticket, err := deps.Support.Open(ctx, usecase.TicketInput{
		Name:        *name,
		Email:       *email,
		Subject:     *subject,
		Description: *description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Ticket %s opened (%s).\n", ticket.ID, ticket.Status)

	return nil
}

func supportList(ctx context.Context, deps *appDeps) error {
	tickets, err := deps.Support.Mine(ctx)
	if err != nil {
		return err
	}

	if len(tickets) == 0 {
		fmt.Println("No tickets.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSUBJECT")
	for _, t := range tickets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Status, t.Subject)
	}

	return w.Flush()
}

func supportShow(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("support show", flag.ExitOnError)
	id := cmd.String("id", "", "Ticket id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	ticket, err := deps.Support.Thread(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("[%s] %s\n%s\n", ticket.Status, ticket.Subject, ticket.Description)
	for _, reply := range ticket.Replies {
		who := reply.Author
		if reply.FromStaff {
			who += " (staff)"
		}
		fmt.Printf("--- %s, %s\n%s\n", who, reply.CreatedAt.Format("2006-01-02 15:04"), reply.Message)
	}

	return nil
}

func supportFAQs(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("support faqs", flag.ExitOnError)
	category := cmd.String("category", "", "Only show one category")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	faqs, err := deps.Support.FAQs(ctx, *category)
	if err != nil {
		return err
	}

	if len(faqs) == 0 {
		fmt.Println("No FAQs.")

		return nil
	}

	for _, faq := range faqs {
		fmt.Printf("[%s] %s\n  %s\n", faq.Category, faq.Question, faq.Answer)
	}

	return nil
}

func supportReply(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("support reply", flag.ExitOnError)
	id := cmd.String("id", "", "Ticket id")
	message := cmd.String("message", "", "Reply text")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if _, err := deps.Support.Reply(ctx, *id, *message); err != nil {
		return err
	}

	fmt.Println("Reply sent.")

	return nil
}
