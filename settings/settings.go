package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	SETTINGS_FILENAME = "settings.json"
	APP_VERSION       = "1.2.0"
)

var settingsInstance *AppSettings

// Settings of the extractor. The file lives next to the binary so a portable
// install keeps its configuration.
type AppSettings struct {
	baseFolder string

	Debug        bool   `json:"debug"`
	Workers      int    `json:"workers"`
	AsUpdate     bool   `json:"as_update"`
	AsDlc        bool   `json:"as_dlc"`
	OutputFolder string `json:"output_folder"`
	KeepHistory  bool   `json:"keep_history"`
	OverrideKeys string `json:"override_keys"`
}

func ReadSettings(baseFolder string) *AppSettings {
	if settingsInstance != nil {
		return settingsInstance
	}
	a := &AppSettings{baseFolder: baseFolder}

	buf, err := os.ReadFile(filepath.Join(baseFolder, SETTINGS_FILENAME))
	if err != nil {
		zap.S().Warnf("Missing or corrupted config file, creating a new one.")
		a.defaults()
		SaveSettings(a, baseFolder)
	} else if err := json.Unmarshal(buf, a); err != nil {
		zap.S().Warnf("Missing or corrupted config file, creating a new one.")
		a.defaults()
		SaveSettings(a, baseFolder)
	}
	settingsInstance = a
	return a
}

func SaveSettings(a *AppSettings, baseFolder string) {
	jsonBytes, err := json.MarshalIndent(a, "", "  ")
	if err == nil {
		os.WriteFile(filepath.Join(baseFolder, SETTINGS_FILENAME), jsonBytes, 0644)
	}
	settingsInstance = a
}

func (a *AppSettings) defaults() {
	a.Debug = false
	a.Workers = 0 // 0 = min(8, cpu count)
	a.KeepHistory = true
	a.OverrideKeys = "override.keys"
}
