package config

import (
	"flag"
	"strings"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/flagx"
)

var serverFlags = []string{"-a", "-http", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-limit", "-tz", "-model", "-cors", "-log"}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      gRPC bind address (e.g., ":50051")
//	-http string   HTTP proxy bind address (empty disables it)
//	-d string      PostgreSQL DSN
//	-s string      JWT HMAC secret key
//	-t int         access token validity, minutes
//	-r int         refresh token validity, minutes
//	-u/-p string   S3 root user / password
//	-b string      S3 bucket name
//	-g string      S3 region
//	-e string      S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-limit int     companion calls per user per day
//	-tz string     IANA time zone for quota days
//	-model string  companion model name
//	-cors string   comma-separated allowed origins
//	-log string    rotating log file path
//
// Unknown flags are filtered out first with flagx.FilterArgs.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "http", config.EndpointAddrHTTP, "address and port to run HTTP proxy")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.IntVar(&config.DailyLimit, "limit", config.DailyLimit, "companion calls per user per day")
	fs.StringVar(&config.TimeZone, "tz", config.TimeZone, "time zone for quota days")
	fs.StringVar(&config.CompanionModel, "model", config.CompanionModel, "companion model")
	cors := fs.String("cors", strings.Join(config.CORSAllowedOrigins, ","), "allowed CORS origins")
	fs.StringVar(&config.LogFile, "log", config.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.CORSAllowedOrigins = splitList(*cors)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
