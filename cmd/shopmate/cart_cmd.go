package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
)

func handleCart(ctx context.Context, args []string, deps *appDeps) error {
	if len(args) == 0 {
		return showCart(deps)
	}

	switch args[0] {
	case "add":
		return cartAdd(ctx, args[1:], deps)
	case "set":
		return cartSet(ctx, args[1:], deps)
	case "remove":
		return cartRemove(ctx, args[1:], deps)
	case "show":
		return showCart(deps)
	case "clear":
		if err := deps.Cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Cart cleared.")

		return nil
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func cartAdd(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("cart add", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	qty := cmd.Int("qty", 1, "Quantity to add")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	// The cart stores a product snapshot, so adding always starts from the
	// live catalog entry.
	product, err := deps.Catalog.Detail(ctx, *id)
	if err != nil {
		return err
	}

	cart, err := deps.Cart.Add(ctx, *product, *qty)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s. Cart: %d items, %.2f total.\n", product.Name, cart.TotalItems(), cart.TotalPrice())

	return nil
}

func cartSet(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("cart set", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	qty := cmd.Int("qty", 1, "New quantity; 0 removes the line")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	cart, err := deps.Cart.UpdateQuantity(ctx, *id, *qty)
	if err != nil {
		return err
	}

	fmt.Printf("Cart: %d items, %.2f total.\n", cart.TotalItems(), cart.TotalPrice())

	return nil
}

func cartRemove(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("cart remove", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	cart, err := deps.Cart.Remove(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("Removed. Cart: %d items, %.2f total.\n", cart.TotalItems(), cart.TotalPrice())

	return nil
}

func showCart(deps *appDeps) error {
	items := deps.Cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tLINE TOTAL")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n",
			item.Product.ID, item.Product.Name, item.Quantity, item.Product.Price, item.LineTotal())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Total: %.2f (%d items)\n", deps.Cart.TotalPrice(), deps.Cart.TotalItems())

	return nil
}
