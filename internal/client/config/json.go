package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/unsaid/internal/flagx"
	"github.com/dmitrijs2005/unsaid/internal/timex"
)

// JsonConfig is used only for unmarshalling. Absent keys keep the current
// value.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        *string         `json:"database_path"`
	AudioDir            *string         `json:"audio_dir"`
	TimeZone            *string         `json:"time_zone"`
	LogFile             *string         `json:"log_file"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with the file named by -c/-config. Read or
// unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.AudioDir, jc.AudioDir)
	set(&cfg.TimeZone, jc.TimeZone)
	set(&cfg.LogFile, jc.LogFile)
}
