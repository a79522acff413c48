package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override NetworkConfig and DebugConfig.
const (
	EnvSTUNServer  = "DOOMERANG_STUN_SERVER"
	EnvBindAddress = "DOOMERANG_BIND_ADDRESS"
	EnvSTUNTimeout = "DOOMERANG_STUN_TIMEOUT"
	EnvUseSTUN     = "DOOMERANG_USE_STUN"
	EnvSkipMenu    = "DOOMERANG_SKIP_MENU"
)

// LoadEnv reads the given .env files (missing files are ignored) into the
// process environment and applies any overrides to the global config.
// Variables already set in the environment win over file values.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return applyEnv()
}

func applyEnv() error {
	if v, ok := os.LookupEnv(EnvSTUNServer); ok && v != "" {
		Network.STUNServer = v
	}
	if v, ok := os.LookupEnv(EnvBindAddress); ok && v != "" {
		Network.BindAddress = v
	}
	if v, ok := os.LookupEnv(EnvSTUNTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSTUNTimeout, err)
		}
		Network.STUNTimeout = d
	}
	if v, ok := os.LookupEnv(EnvUseSTUN); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUseSTUN, err)
		}
		Network.UseSTUN = b
	}
	if v, ok := os.LookupEnv(EnvSkipMenu); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSkipMenu, err)
		}
		Debug.SkipMenu = b
	}
	return nil
}
