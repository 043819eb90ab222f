// Package config handles configuration management for lydio.
// Settings are layered from embedded defaults, an optional TOML file and
// LYDIO_ environment variables, then decoded into Config.
package config
