package config

import "fmt"

// ValidateConfig checks the invariants the rest of the app relies on. No
// provider credential is required, since the mock fallback covers an empty
// set, but partially configured sections are caught here.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if cfg.DBHost != "" && cfg.DBName == "" {
		return fmt.Errorf("DB_NAME is required when DB_HOST is set")
	}
	if cfg.DBHost == "" && cfg.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH must not be empty when DB_HOST is unset")
	}
	if (cfg.EdamamAppID == "") != (cfg.EdamamAppKey == "") {
		return fmt.Errorf("EDAMAM_APP_ID and EDAMAM_APP_KEY must be set together")
	}
	return nil
}
