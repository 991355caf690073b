package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"grpvtracker/cmd"
	"grpvtracker/internal/db/models/postgres/public/model"
	"grpvtracker/internal/repository"
	"grpvtracker/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var userIDFlag string

var rootCmd = &cobra.Command{
	Use:   "grpvtracker",
	Short: "Run scoring operations against the grpvtracker backend",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [symbol]",
	Short: "Fetch factor data for a symbol, score it, and store the analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		userID, err := uuid.Parse(userIDFlag)
		if err != nil {
			return fmt.Errorf("invalid --user value %s: %w", userIDFlag, err)
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		analysis, err := apiHandler.AnalysisService.Calculate(context.Background(), userID, args[0])
		if err != nil {
			return err
		}
		util.Pprint(analysis)

		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed ticker universe",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		results, err := apiHandler.SymbolSearchService.Search(args[0])
		if err != nil {
			return err
		}
		util.Pprint(results)

		return nil
	},
}

type tickerRow struct {
	Symbol string `csv:"symbol"`
	Name   string `csv:"name"`
}

var seedTickersCmd = &cobra.Command{
	Use:   "seed-tickers [csv-file]",
	Short: "Upsert the ticker universe from a symbol,name csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		rows := []tickerRow{}
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		tickerRepository := repository.NewTickerRepository(apiHandler.Db)
		for _, row := range rows {
			t, err := tickerRepository.GetOrCreate(model.Ticker{
				Symbol: row.Symbol,
				Name:   row.Name,
			})
			if err != nil {
				return err
			}
			if err := apiHandler.SymbolSearchService.Index(t.Symbol, t.Name); err != nil {
				return err
			}
		}
		fmt.Printf("seeded %d tickers\n", len(rows))

		return nil
	},
}

func main() {
	calculateCmd.Flags().StringVar(&userIDFlag, "user", "", "user account id the analysis belongs to")
	if err := calculateCmd.MarkFlagRequired("user"); err != nil {
		log.Fatal(err)
	}

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(seedTickersCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
