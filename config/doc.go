// Package config loads xduce configuration from YAML files, .env files and
// the process environment using Viper and godotenv.
//
// Environment variables override file values. With WithEnvPrefix("XDUCE"),
// XDUCE_OUTPUT_REDIS_ADDR sets output.redis.addr.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("xduce", &cfg, config.WithConfigFile(path))
package config
