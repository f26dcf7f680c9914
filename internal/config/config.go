// Package config provides configuration options for the application using
// command-line flags, environment variables and an optional .env file.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// BaseURL is the externally visible base URL used for short links
	// and for the self-reference check. Empty means derive per request.
	BaseURL string

	// FilePath is the path to the storage file for persistent data.
	FilePath string

	// DatabaseDSN holds the database connection string.
	DatabaseDSN string

	// SlugLength is the length of generated slugs.
	SlugLength int

	// EnablePprof indicates whether to enable pprof for profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

var options = &Options{}

func init() {
	flag.StringVar(&options.Port, "a", "localhost:2550", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "", "externally visible base url")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.IntVar(&options.SlugLength, "l", 5, "generated slug length")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse loads an optional .env file, parses the command-line flags and lets
// environment variables override them. It returns the resulting Options.
func Parse() *Options {
	// Missing .env is fine, flags and the environment still apply.
	_ = godotenv.Load()

	flag.Parse()

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if slugLength := os.Getenv("SLUG_LENGTH"); slugLength != "" {
		if n, err := strconv.Atoi(slugLength); err == nil && n > 0 {
			options.SlugLength = n
		}
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}
