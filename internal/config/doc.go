// Package config loads, parses and validates application settings from
// defaults, an optional config.yaml, a .env file and TASKIFY_* environment
// variables, keeping configuration details out of business logic.
package config
