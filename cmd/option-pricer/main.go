package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/contactkeval/option-pricer/internal/input"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

func main() {
	contractPath := flag.String("contract", "", "path to a JSON or YAML pricing request")
	kind := flag.String("kind", "", "option type: c/call or p/put")
	spot := flag.String("spot", "", "current price of the underlying")
	strike := flag.String("strike", "", "strike price")
	rate := flag.String("rate", "", "risk-free rate, decimal or with % suffix")
	maturity := flag.String("maturity", "", "time to expiry: years, or days if > 1")
	vol := flag.String("vol", "", "annualized volatility, decimal or with % suffix")
	outDir := flag.String("out", "", "directory for JSON/CSV result files (optional)")
	verbosity := flag.Int("v", 1, "verbosity: 0=errors,1=info,2=debug")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	var (
		contract pricing.Contract
		err      error
	)
	switch {
	case *contractPath != "":
		contract, err = input.LoadFile(*contractPath)
	case *kind != "":
		contract, err = input.FromStrings(*kind, *spot, *strike, *rate, *maturity, *vol)
	default:
		contract, err = input.NewPrompter().Collect()
	}
	if err != nil {
		logger.Errorf("collecting input: %v", err)
		os.Exit(1)
	}

	res, err := pricing.PriceAndGreeks(contract)
	if err != nil {
		logger.Errorf("pricing failed: %v", err)
		os.Exit(1)
	}

	fmt.Print(report.Text(contract.Kind, res))

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			logger.Errorf("could not create output dir %s: %v", *outDir, err)
			os.Exit(1)
		}
		if err := report.WriteJSON(contract.Kind, res, *outDir); err != nil {
			logger.Errorf("writing result.json: %v", err)
			os.Exit(1)
		}
		if err := report.WriteCSV(contract.Kind, res, *outDir); err != nil {
			logger.Errorf("writing result.csv: %v", err)
			os.Exit(1)
		}
		logger.Infof("wrote result files to %s", *outDir)
	}
}
