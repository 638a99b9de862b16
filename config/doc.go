// Package config loads tracelog settings.
//
// Settings come from three places, applied in this order: the built-in
// defaults, an optional TOML file, and TRACELOG_* environment variables
// (optionally read from .env files first). Resolve validates the result
// and turns it into the typed Settings a Logger is built from; every
// problem is reported, not just the first.
//
//	cfg, err := config.Load(path)
//	if err != nil {
//		return err
//	}
//	if err := config.LoadEnv(cfg, ".env"); err != nil {
//		return err
//	}
//	settings, err := cfg.Resolve()
package config
