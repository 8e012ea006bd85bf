// Package configs manages passmap configuration.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. Built-in defaults (store ".map.json", lengths 8 to 15, audit on)
//  2. The TOML file at <user config dir>/passmap/config.toml
//  3. PASSMAP_* environment variables
//
// # Environment Variables
//
//	PASSMAP_CONFIG_DIR  directory holding config.toml
//	PASSMAP_STORE       credential file path
//	PASSMAP_MIN_LENGTH  shortest random length (inclusive)
//	PASSMAP_MAX_LENGTH  longest random length (exclusive)
//	PASSMAP_AUDIT       write the audit log (true/false)
//
// Call InitSettings() before accessing ActiveSettings.
package configs
