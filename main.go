package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"openf1lapexport/pkg/ledger"
	"openf1lapexport/pkg/openf1"
	"openf1lapexport/pkg/report"
)

const (
	envAPIURL    = "OPENF1_API_URL"
	envOutputDir = "OPENF1_OUTPUT_DIR"
	envLedgerDB  = "OPENF1_LEDGER_DB"
)

type config struct {
	apiURL    string
	outputDir string
	ledgerDB  string
}

func loadConfig() config {
	return config{
		apiURL:    os.Getenv(envAPIURL),
		outputDir: os.Getenv(envOutputDir),
		ledgerDB:  os.Getenv(envLedgerDB),
	}
}

func main() {
	cfg := loadConfig()

	if cfg.outputDir != "" {
		if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
			log.Fatalf("error creating output dir: %s", err)
		}
	}

	client := openf1.NewClient(cfg.apiURL, cfg.outputDir)
	ctx := context.Background()

	log.Printf("Exporting laps of the latest meeting from %s\n", client.BaseURL())
	runAt := time.Now()
	results, exportErr := client.ExportLapsPerSession(ctx)
	if len(results) > 0 {
		fmt.Print(report.RenderSummary(results))
	}

	if cfg.ledgerDB != "" && len(results) > 0 {
		if err := recordRun(ctx, cfg.ledgerDB, runAt, results); err != nil {
			log.Printf("error recording export run: %s", err)
		}
	}

	if exportErr != nil {
		log.Fatalf("export failed: %+v", exportErr)
	}
}

func recordRun(ctx context.Context, path string, runAt time.Time, results []openf1.ExportResult) error {
	lm, err := ledger.NewManager(path)
	if err != nil {
		return err
	}
	defer lm.Close()

	return lm.Record(ctx, runAt, results)
}
