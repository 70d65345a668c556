package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL"`       // logrus library log level to be assigned
	PythonBin      string `mapstructure:"PYTHON_BIN"`      // interpreter binary resolved through PATH
	TargetScript   string `mapstructure:"TARGET_SCRIPT"`   // script handed to the interpreter
	DataPath       string `mapstructure:"DATA_PATH"`       // folder for the history database and settings file
	NonInteractive bool   `mapstructure:"NON_INTERACTIVE"` // skip the blocking operator acknowledgments
	HistoryEnabled bool   `mapstructure:"HISTORY_ENABLED"` // record launch sessions into the history store
}

// Initialize default parameters values
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PYTHON_BIN", "python")
	viper.SetDefault("TARGET_SCRIPT", "gemini_image_gen.py")
	viper.SetDefault("DATA_PATH", ".launcher")
	viper.SetDefault("NON_INTERACTIVE", false)
	viper.SetDefault("HISTORY_ENABLED", true)
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Debug(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
