package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	"fiitrack/internal/config"
	"fiitrack/internal/service"
	"fiitrack/internal/store"

	_ "github.com/lib/pq"
	"github.com/phuslu/log"
)

func main() {
	var (
		configPath = flag.String("config", "config.toml", "path to config file")
		investorID = flag.Int64("investor", 0, "investor id")
		year       = flag.Int("year", time.Now().UTC().Year(), "payment year")
		month      = flag.Int("month", int(time.Now().UTC().Month()), "payment month (1-12)")
	)
	flag.Parse()
	if *investorID == 0 {
		log.Fatal().Msg("-investor is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	dbConn, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open db")
	}
	defer dbConn.Close()

	svc := service.NewPortfolioService(store.NewPostgresStore(dbConn))
	summary, err := svc.MonthlyDividendSummary(context.Background(), *investorID, *year, time.Month(*month))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute monthly dividend summary")
	}

	fmt.Printf("dividends received %04d-%02d\n", summary.Year, int(summary.Month))
	for _, instrument := range summary.Instruments {
		fmt.Printf("\n%s\n", instrument.Ticker)
		for _, line := range instrument.Lines {
			fmt.Printf(
				"  %s  cutoff %s  %d units x %s = %s\n",
				line.PaymentDate.Format("2006-01-02"),
				line.CutoffDate.Format("2006-01-02"),
				line.EligibleQuantity,
				line.AmountPerUnit.String(),
				line.TotalAmount.String(),
			)
		}
		fmt.Printf("  subtotal %s\n", instrument.FormattedSubtotal())
	}
	fmt.Printf("\ntotal %s\n", summary.FormattedTotal())
}
