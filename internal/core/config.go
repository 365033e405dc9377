package core

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// ConfigurationManager loads the optional .tasknotesrc configuration file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// YAML configuration files.
type viperConfigManager struct {
	// searchPaths are the directories checked for .tasknotesrc, in order.
	searchPaths []string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .tasknotesrc in the given directories. When none are given, the current
// directory and the user's home directory are searched.
func NewConfigurationManager(searchPaths ...string) ConfigurationManager {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			searchPaths = append(searchPaths, home)
		}
	}
	return &viperConfigManager{searchPaths: searchPaths}
}

func defaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		VaultPath:      "",
		ArchiveSibling: true,
		EventLogPath:   "",
	}
}

// LoadGlobalConfig reads .tasknotesrc using Viper. A missing file returns
// defaults; a malformed file is an error.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".tasknotesrc")
	v.SetConfigType("yaml")
	for _, p := range cm.searchPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("vault.path", cfg.VaultPath)
	v.SetDefault("scan.archive_sibling", cfg.ArchiveSibling)
	v.SetDefault("observability.event_log", cfg.EventLogPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .tasknotesrc: %w", err)
	}

	cfg.VaultPath = v.GetString("vault.path")
	cfg.ArchiveSibling = v.GetBool("scan.archive_sibling")
	cfg.EventLogPath = v.GetString("observability.event_log")

	return cfg, nil
}
