package settings

import (
	"bufio"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const SETTINGS_FILE_NAME = "launcher.toml"

// Settings keeps the launcher state file under the data folder. Values set
// during the current run win over values already stored in the file; stored
// keys that were not touched are preserved across rewrites.
type Settings struct {
	filePath string
	values   map[string]interface{}
}

func NewSettings(basePath string) (instance *Settings) {
	return &Settings{
		filePath: filepath.Join(basePath, SETTINGS_FILE_NAME),
		values:   make(map[string]interface{}),
	}
}

func (launcherSettings *Settings) Set(key string, value interface{}) {
	launcherSettings.values[key] = value
}

func (launcherSettings *Settings) SetTimestamp(key string, moment time.Time) {
	launcherSettings.values[key] = moment.UTC().Format(time.RFC3339)
}

func (launcherSettings *Settings) Get(key string) (value interface{}, ok bool) {
	value, ok = launcherSettings.values[key]
	return
}

// Sync merges the keys already stored in the settings file and rewrites it.
func (launcherSettings *Settings) Sync() (err error) {
	if _, statErr := os.Stat(launcherSettings.filePath); statErr == nil {
		var fileData []byte
		if fileData, err = os.ReadFile(launcherSettings.filePath); err != nil {
			return
		}
		savedValues := make(map[string]interface{})
		if err = toml.Unmarshal(fileData, &savedValues); err != nil {
			return
		}
		for settingKey, settingValue := range savedValues {
			if _, ok := launcherSettings.values[settingKey]; !ok {
				launcherSettings.values[settingKey] = settingValue
			}
		}
	}
	if err = os.MkdirAll(filepath.Dir(launcherSettings.filePath), 0755); err != nil {
		return
	}
	var file *os.File
	if file, err = os.OpenFile(launcherSettings.filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = toml.NewEncoder(writer).Encode(launcherSettings.values); err != nil {
		return
	}
	return writer.Flush()
}
