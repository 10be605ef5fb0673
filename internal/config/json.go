package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ecofinds/ecofinds-go/internal/flagx"
	"github.com/ecofinds/ecofinds-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the toast window either as a string
// like "3s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath  string         `json:"database_path"`
	ToastDuration timex.Duration `json:"toast_duration"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given, nothing
// is loaded. Read or unmarshal errors panic (caller may recover).
//
// Only fields present in the JSON override the current values, so the file
// can be partial.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ToastDuration.Duration != 0 {
		cfg.ToastDuration = time.Duration(jc.ToastDuration.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
