package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-write-db-host write pool host
//	-write-db-port write pool port
//	-read-db-host read pool host
//	-read-db-port read pool port
//	-db-name database name shared by both pools
//	-db-user database user shared by both pools
//	-db-password database password shared by both pools
//	-monitor-interval pool health probe period (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers all flags on fs and parses args into a fresh
// [StructuredConfig]. Split out of [ParseFlags] so tests can supply their own
// flag set instead of mutating the process-wide one.
func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var writeHost, readHost string
	var writePort, readPort int
	var dbName, dbUser, dbPassword string
	var monitorInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&writeHost, "write-db-host", "", "Write pool host")
	fs.IntVar(&writePort, "write-db-port", 0, "Write pool port")
	fs.StringVar(&readHost, "read-db-host", "", "Read pool host")
	fs.IntVar(&readPort, "read-db-port", 0, "Read pool port")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.StringVar(&dbUser, "db-user", "", "Database user")
	fs.StringVar(&dbPassword, "db-password", "", "Database password")
	fs.DurationVar(&monitorInterval, "monitor-interval", 0, "Pool health probe period (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Storage: Storage{
			Write: Pool{
				Host: writeHost,
				Port: writePort,
			},
			Read: Pool{
				Host: readHost,
				Port: readPort,
			},
			Database: dbName,
			User:     dbUser,
			Password: dbPassword,
		},
		Workers: Workers{
			MonitorInterval: monitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
