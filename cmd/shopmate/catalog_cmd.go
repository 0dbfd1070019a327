package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
)

func handleProducts(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("products", flag.ExitOnError)
	category := cmd.String("category", "", "Filter by category")
	search := cmd.String("search", "", "Filter by search term")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	products, err := deps.Catalog.Browse(ctx, service.ProductQuery{Category: *category, Search: *search})
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products found.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%d\n", p.ID, p.Name, p.Price, p.Category, p.Stock)
	}

	return w.Flush()
}

func handleProduct(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("product", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	product, err := deps.Catalog.Detail(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\nPrice: %.2f  Category: %s  Stock: %d\n",
		product.Name, product.Description, product.Price, product.Category, product.Stock)

	return nil
}

func handleRatings(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("ratings", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	ratings, err := deps.Catalog.Ratings(ctx, *id)
	if err != nil {
		return err
	}

	if len(ratings) == 0 {
		fmt.Println("No ratings yet.")

		return nil
	}

	for _, r := range ratings {
		fmt.Printf("%d/5  %s\n", r.Stars, r.Comment)
	}

	return nil
}

func handleRate(ctx context.Context, args []string, deps *appDeps) error {
	cmd := flag.NewFlagSet("rate", flag.ExitOnError)
	id := cmd.String("id", "", "Product id")
	stars := cmd.Int("stars", 0, "Stars, 1 to 5")
	comment := cmd.String("comment", "", "Optional comment")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	rating, err := deps.Catalog.Rate(ctx, *id, usecase.RatingInput{Stars: *stars, Comment: *comment})
	if err != nil {
		return err
	}

	fmt.Printf("Rated %d/5.\n", rating.Stars)

	return nil
}
