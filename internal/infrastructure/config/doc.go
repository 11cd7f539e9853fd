// Package config loads and validates the netweave daemon configuration.
//
// Configuration comes from a YAML file with defaults applied first and
// NETWEAVE_* environment variables applied last, so deployment secrets
// (broker passwords, InfluxDB tokens) can stay out of the file. Loading
// happens once at startup; Validate rejects configs the daemon cannot
// run with.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Open(cfg.Database)
package config
