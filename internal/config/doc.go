// SPDX-License-Identifier: MPL-2.0

// Package config handles kash configuration using Viper.
//
// Defaults are always registered. A configuration file is read only when its
// path is given explicitly; CUE (.cue) and TOML (.toml) files are accepted and
// both are validated against the embedded CUE schema (config_schema.cue)
// before being merged over the defaults.
package config
