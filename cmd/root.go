package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stocktracker/internal/service"
	"stocktracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stocktracker",
	Short: "Portfolio position and analytics engine",
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(handler)

		secrets, err := util.LoadSecrets()
		if err != nil {
			return err
		}
		return handler.StartApi(secrets.ApiPort)
	},
}

var (
	updatePricesSymbols  []string
	updatePricesDaysBack int
)

var updatePricesCmd = &cobra.Command{
	Use:   "update-prices",
	Short: "Ingest provider price history into the price table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(updatePricesSymbols) == 0 {
			return fmt.Errorf("at least one --symbol is required")
		}
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(handler)

		return handler.PriceService.UpdatePrices(context.Background(), updatePricesSymbols, updatePricesDaysBack)
	},
}

var (
	simulateSymbols    []string
	simulateStart      string
	simulateEnd        string
	simulateInvestment float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an equal-weight buy-and-hold simulation over stored prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse("2006-01-02", simulateStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := time.Parse("2006-01-02", simulateEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(handler)

		result, err := handler.SimulationService.Run(context.Background(), service.SimulationInput{
			Symbols:           simulateSymbols,
			StartDate:         start,
			EndDate:           end,
			InitialInvestment: decimal.NewFromFloat(simulateInvestment),
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	updatePricesCmd.Flags().StringSliceVar(&updatePricesSymbols, "symbol", nil, "symbols to update")
	updatePricesCmd.Flags().IntVar(&updatePricesDaysBack, "days", 365, "days of history to ingest")

	simulateCmd.Flags().StringSliceVar(&simulateSymbols, "symbol", nil, "symbols to simulate")
	simulateCmd.Flags().StringVar(&simulateStart, "start", "", "start date (YYYY-MM-DD)")
	simulateCmd.Flags().StringVar(&simulateEnd, "end", "", "end date (YYYY-MM-DD)")
	simulateCmd.Flags().Float64Var(&simulateInvestment, "amount", 10000, "initial investment")

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(updatePricesCmd)
	rootCmd.AddCommand(simulateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
