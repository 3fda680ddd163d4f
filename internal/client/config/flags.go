package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/flagx"
)

var clientFlags = []string{"-a", "-i", "-db", "-audio", "-tz", "-log"}

// parseFlags populates Config fields from command-line flags. Flags it
// does not know are filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, clientFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local cache database path")
	fs.StringVar(&cfg.AudioDir, "audio", cfg.AudioDir, "voice note directory")
	fs.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone for days and streaks")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
