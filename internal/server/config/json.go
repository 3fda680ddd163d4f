package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/unsaid/internal/flagx"
	"github.com/dmitrijs2005/unsaid/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations use
// timex.Duration so both "1m" and integer nanoseconds are accepted.
// Missing keys leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	DailyLimit                   *int            `json:"daily_limit"`
	TimeZone                     *string         `json:"time_zone"`
	CompanionEndpoint            *string         `json:"companion_endpoint"`
	CompanionModel               *string         `json:"companion_model"`
	CompanionAPIKeyEnv           *string         `json:"companion_api_key_env"`
	CompanionTimeout             *timex.Duration `json:"companion_timeout"`
	CORSAllowedOrigins           []string        `json:"cors_allowed_origins"`
	LogFile                      *string         `json:"log_file"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays values from the file named by -c/-config. No flag means
// no file. An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.JSONConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.DailyLimit, c.DailyLimit)
	set(&config.TimeZone, c.TimeZone)
	set(&config.CompanionEndpoint, c.CompanionEndpoint)
	set(&config.CompanionModel, c.CompanionModel)
	set(&config.CompanionAPIKeyEnv, c.CompanionAPIKeyEnv)
	if c.CompanionTimeout != nil {
		config.CompanionTimeout = c.CompanionTimeout.Duration
	}
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	set(&config.LogFile, c.LogFile)
}
