package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables read by ApplyEnv
const (
	EnvFile       = "TRACELOG_FILE"
	EnvPersist    = "TRACELOG_PERSIST"
	EnvPrintOrder = "TRACELOG_PRINT_ORDER"
	EnvWriteOrder = "TRACELOG_WRITE_ORDER"
	EnvPrintLevel = "TRACELOG_PRINT_LEVEL"
	EnvPrintDate  = "TRACELOG_PRINT_DATE"
	EnvWriteDate  = "TRACELOG_WRITE_DATE"
	EnvNull       = "TRACELOG_NULL"
)

// LoadEnv reads the given .env files into the process environment, then
// applies the TRACELOG_* variables to c. Files that do not exist are
// skipped; variables already set in the environment win over the files.
func LoadEnv(c *Config, files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "loading %s", f)
		}
	}
	ApplyEnv(c)
	return nil
}

// ApplyEnv overrides fields of c from TRACELOG_* variables.
func ApplyEnv(c *Config) {
	c.File = GetString(EnvFile, c.File)
	c.Persist = GetBool(EnvPersist, c.Persist)
	c.Print.Order = GetList(EnvPrintOrder, c.Print.Order)
	c.Write.Order = GetList(EnvWriteOrder, c.Write.Order)
	c.Print.MinLevel = GetString(EnvPrintLevel, c.Print.MinLevel)
	c.Print.Date = GetString(EnvPrintDate, c.Print.Date)
	c.Write.Date = GetString(EnvWriteDate, c.Write.Date)
	c.Symbols.Null = GetString(EnvNull, c.Symbols.Null)
}

func GetString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func GetBool(key string, fallback bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	valBool, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return valBool
}

// GetList splits a comma separated variable.
func GetList(key string, fallback []string) []string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parts := strings.Split(val, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
