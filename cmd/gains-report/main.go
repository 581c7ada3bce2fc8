package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"fiitrack/internal/config"
	"fiitrack/internal/dividend"
	"fiitrack/internal/service"
	"fiitrack/internal/store"

	_ "github.com/lib/pq"
	"github.com/phuslu/log"
)

func main() {
	var (
		configPath = flag.String("config", "config.toml", "path to config file")
		investorID = flag.Int64("investor", 0, "investor id")
		ticker     = flag.String("ticker", "", "FII ticker (e.g. MXRF11)")
	)
	flag.Parse()
	if *investorID == 0 || *ticker == "" {
		log.Fatal().Msg("-investor and -ticker are required")
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
	report, err := svc.RealizedGains(context.Background(), *investorID, *ticker)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute realized gains")
	}

	fmt.Printf("realized gains for %s\n\n", report.Ticker)
	for _, m := range report.Matches {
		fmt.Printf(
			"sale %d on %s: %d units from lot %s, cost basis %s, proceeds %s, gain %s\n",
			m.SaleTransactionID,
			m.SaleDate.Format("2006-01-02"),
			m.Quantity,
			m.LotID,
			m.CostBasis.StringFixed(2),
			m.Proceeds.StringFixed(2),
			m.Gain.StringFixed(2),
		)
	}
	fmt.Printf(
		"\ntotal cost basis %s, total gain %s\n",
		dividend.FormatBRL(report.TotalCostBasis),
		dividend.FormatBRL(report.TotalGain),
	)

	if len(report.OpenLots) > 0 {
		fmt.Println("\nopen lots")
		for _, lot := range report.OpenLots {
			fmt.Printf(
				"  %s  %d of %d units remaining @ %s\n",
				lot.OpenDate.Format("2006-01-02"),
				lot.RemainingQuantity,
				lot.Quantity,
				lot.UnitCost.StringFixed(2),
			)
		}
	}
}
