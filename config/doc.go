// Package config loads lazystream configuration.
//
// Viper reads an optional YAML file, godotenv loads an optional .env file into
// the environment, and environment variables are bound over the file values
// under every nested key they could address.
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("lazystream", &cfg,
//	    config.WithConfigFile(path),
//	    config.WithEnvPrefix("LAZYSTREAM"))
//
// With the LAZYSTREAM prefix, LAZYSTREAM_STREAM_MAX_COUNT=500 overrides
// stream.max_count from the file.
package config
