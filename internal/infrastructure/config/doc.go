// Package config provides YAML-based configuration loading for Areawatch Core.
//
// Configuration is loaded in three layers, each overriding the last:
//
//  1. Hardcoded defaults (Default)
//  2. The YAML configuration file
//  3. AREAWATCH_* environment variables
//
// The loaded Config is validated before use; an invalid configuration
// prevents startup rather than failing later at runtime.
package config
