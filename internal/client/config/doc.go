// Package config loads runtime configuration for the Unsaid terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string      address:port of the backend gRPC endpoint
//	-i int         online status check interval (seconds)
//	-db string     path of the local SQLite cache
//	-audio string  directory downloaded voice notes are written to
//	-tz string     IANA time zone used for day grouping and streaks
//	-log string    rotating log file path (empty logs to stderr only)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "unsaid.db",
//	  "audio_dir": "audio",
//	  "time_zone": "Local",
//	  "log_file": ""
//	}
package config
