// Package config loads typed configuration structs from environment
// variables (github.com/caarlos0/env) with optional .env file support
// (github.com/joho/godotenv).
//
// Parsed configurations are cached per type, so independent components can
// call Load for the same struct without re-reading the environment:
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
package config
