package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    func() *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-http", ":9999", "-d", "db", "-s", "secret",
				"-t", "1", "-r", "3", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
				"-limit", "5", "-tz", "Europe/Riga", "-model", "m1", "-cors", "http://a.test, http://b.test", "-log", "/tmp/u.log",
			},
			expected: func() *Config {
				c := defaults()
				c.EndpointAddrGRPC = "127.0.0.1:9090"
				c.EndpointAddrHTTP = ":9999"
				c.DatabaseDSN = "db"
				c.SecretKey = "secret"
				c.AccessTokenValidityDuration = 1 * time.Minute
				c.RefreshTokenValidityDuration = 3 * time.Minute
				c.S3RootUser = "user"
				c.S3RootPassword = "password"
				c.S3Bucket = "bucket"
				c.S3Region = "us-west-1"
				c.S3BaseEndpoint = "http://endpoint"
				c.DailyLimit = 5
				c.TimeZone = "Europe/Riga"
				c.CompanionModel = "m1"
				c.CORSAllowedOrigins = []string{"http://a.test", "http://b.test"}
				c.LogFile = "/tmp/u.log"
				return c
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-x", "1", "-limit", "7"},
			expected: func() *Config {
				c := defaults()
				c.DailyLimit = 7
				return c
			},
		},
		{
			name:        "bad int panics",
			args:        []string{"-limit", "many"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected(), config))
		})
	}
}
