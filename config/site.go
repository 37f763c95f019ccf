package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// SiteConfigFile is the name of the site configuration file inside the content directory.
const SiteConfigFile = "0.custom-config.json"

// DefaultTimeZone is used when the site configuration does not name one.
const DefaultTimeZone = "UTC"

// RepositoryConfig points at the repository hosting the site content.
type RepositoryConfig struct {
	Provider string `mapstructure:"provider"`
	Owner    string `mapstructure:"owner"`
	Repo     string `mapstructure:"repo"`
	Branch   string `mapstructure:"branch"`
}

// GeneralConfig holds the conference-wide settings.
type GeneralConfig struct {
	ConferenceName string `mapstructure:"conferenceName"`
	TimeZone       string `mapstructure:"timeZone"`
	SiteURL        string `mapstructure:"siteUrl"`
}

// SiteConfig is the subset of the content site configuration the service reads.
type SiteConfig struct {
	General    GeneralConfig `mapstructure:"general"`
	NuxtStudio struct {
		Repository RepositoryConfig `mapstructure:"repository"`
	} `mapstructure:"nuxtStudio"`
}

// Location resolves the configured IANA time zone.
func (c *SiteConfig) Location() (*time.Location, error) {
	name := c.General.TimeZone
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

// LoadSite reads the site configuration from contentDir. A missing file yields the defaults.
func LoadSite(contentDir string) (*SiteConfig, error) {
	v := viper.New()
	v.SetDefault("general.timeZone", DefaultTimeZone)
	v.SetDefault("general.conferenceName", "")
	v.SetDefault("general.siteUrl", "")
	v.SetDefault("nuxtStudio.repository.provider", "github")
	v.SetDefault("nuxtStudio.repository.branch", "main")

	path := filepath.Join(contentDir, SiteConfigFile)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read site config %s: %w", path, err)
		}
	}

	cfg := &SiteConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode site config: %w", err)
	}
	if cfg.General.TimeZone == "" {
		cfg.General.TimeZone = DefaultTimeZone
	}
	return cfg, nil
}
