package main

import (
	"context"
	"fmt"
	"log"

	"streakfade/api"
	"streakfade/cmd"
	"streakfade/internal"
	"streakfade/internal/logger"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "streakfade",
		Short: "Bet-against-streaks equity strategy engine",
	}

	var port int
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "Serve the status/trigger API",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)
			return handler.StartApi(port)
		},
	}
	apiCmd.Flags().IntVar(&port, "port", 3009, "port to serve the api on")

	rebalanceCmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Run one daily rebalance cycle",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)
			return runRebalance(handler)
		},
	}

	var lookbackDays int
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Backfill daily closes for the current universe into the db",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)
			return runIngest(handler, lookbackDays)
		},
	}
	ingestCmd.Flags().IntVar(&lookbackDays, "lookback", 30, "calendar days of history to ingest")

	rootCmd.AddCommand(apiCmd, rebalanceCmd, ingestCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runRebalance(handler *api.ApiHandler) error {
	ctx := logger.AddToContext(context.Background(), logger.New())

	snapshot, err := handler.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load coarse snapshot: %w", err)
	}
	handler.RebalancerHandler.RefreshUniverse(ctx, snapshot)

	return handler.RebalancerHandler.Rebalance(ctx)
}

func runIngest(handler *api.ApiHandler, lookbackDays int) error {
	ctx := logger.AddToContext(context.Background(), logger.New())

	snapshot, err := handler.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load coarse snapshot: %w", err)
	}
	symbols := handler.RebalancerHandler.RefreshUniverse(ctx, snapshot)

	tx, err := handler.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := internal.UpdateUniversePrices(tx, symbols, lookbackDays, handler.AdjPriceRepository); err != nil {
		return err
	}

	return tx.Commit()
}
