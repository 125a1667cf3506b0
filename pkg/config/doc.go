// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// It is a thin layer over github.com/caarlos0/env and
// github.com/joho/godotenv: struct fields declare their sources through
// `env` tags, Load parses them, and each type is parsed at most once per
// process so independent packages can call Load for their own config
// without coordination.
//
//	var cfg locale.Config
//	config.MustLoad(&cfg)
package config
