// Package config provides configuration management for blobls.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (read with godotenv, overriding the process environment).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Storage: provider, account credentials (STORAGE_ACCOUNT, STORAGE_ACCESS_KEY),
//     endpoint, delimiter, prefix and page size
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags of each subsection.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Provider)
package config
