package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a portal API address
//	-request-timeout request timeout (e.g., "15s")
//	-admin-id administrator identifier
//	-d snapshot cache DSN
//	-refresh-interval background refresh interval (e.g., "5m")
//	-export-dir spreadsheet export directory
//	-log-file client log file
//	-listen fake API listen address host:port
//	-seed fake API seed workbook (.xlsx)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("student-portal", flag.ContinueOnError)

	var apiAddress string
	var requestTimeout time.Duration
	var adminID string
	var databaseDSN string
	var refreshInterval time.Duration
	var exportDir string
	var logFile string
	var listenAddress NetAddress
	var seedFile string
	var jsonConfigPath string

	fs.StringVar(&apiAddress, "a", "", "Portal API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&adminID, "admin-id", "", "Administrator ID")
	fs.StringVar(&databaseDSN, "d", "", "Snapshot cache DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	fs.StringVar(&exportDir, "export-dir", "", "Spreadsheet export directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.Var(&listenAddress, "listen", "Fake API listen address host:port")
	fs.StringVar(&seedFile, "seed", "", "Fake API seed workbook (.xlsx)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AdminID:   adminID,
			ExportDir: exportDir,
			LogFile:   logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		FakeAPI: FakeAPI{
			Address:  listenAddress.String(),
			SeedFile: seedFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
