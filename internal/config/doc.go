// Package config loads, normalizes, and validates mediascan's TOML
// configuration. Missing files fall back to defaults so the tool runs
// usefully with no configuration at all.
package config
