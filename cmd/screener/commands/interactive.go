package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"StockScout/internal/report"
	"StockScout/internal/screener"
	"StockScout/internal/watchlist"
)

// runInteractive is the default command: a numbered category menu that runs
// one screening pass per selection until the user exits or interrupts.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scr := newScreener()
	names := watchlist.Names()

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("  RECESSION-PROOF STOCK SCREENER")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\nCategories:")
	for i, name := range names {
		fmt.Printf("  %d. %s\n", i+1, title(name))
	}
	fmt.Printf("  %d. All Categories\n", len(names)+1)
	fmt.Println("  0. Exit")

	// Stdin reads run in their own goroutine so an interrupt is noticed even
	// while blocked on input.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Printf("\nSelect category (0-%d): ", len(names)+1)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return nil
		case line, ok = <-lines:
			if !ok {
				fmt.Println("\nGoodbye!")
				return nil
			}
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Please enter a valid number.")
			continue
		}

		var category string
		switch {
		case choice == 0:
			fmt.Println("Goodbye!")
			return nil
		case choice == len(names)+1:
			category = ""
			fmt.Println("\nScreening all categories...")
		case choice >= 1 && choice <= len(names):
			category = names[choice-1]
			fmt.Printf("\nScreening %s...\n", title(category))
		default:
			fmt.Println("Invalid choice. Try again.")
			continue
		}

		results, err := scr.Screen(ctx, screener.Options{
			Category:      category,
			MinValueScore: cfg.Screener.MinValueScore,
			MinTrendScore: cfg.Screener.MinTrendScore,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			fmt.Printf("Screening failed: %v\n", err)
			continue
		}
		fmt.Print(report.FormatTable(results))
	}
}

// title turns a category key like "consumer_staples" into "Consumer Staples".
func title(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
