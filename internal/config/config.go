// Package config loads the configuration of the backend from environment
// variables and an optional config.yaml file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrAPIURLNotSet = errors.New("environment variable API_URL must be set")

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL // URL the API is reachable at, used for links in responses
	LogFormat        string   // "human" or "json". Defaults to human readable in gin debug mode
	GinMode          string   // gin mode, defaults to "release"
	CORSAllowOrigins []string // Origins allowed for CORS requests. CORS is disabled if empty
	EnablePprof      bool     // Register pprof handlers at /debug/pprof
	DataDir          string   // Directory for the database
	UploadDir        string   // Directory uploaded files are stored in until they are imported
	Port             string   // Port to listen on
}

// Database returns the path of the database file.
func (c Config) Database() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// Load reads the configuration.
//
// Environment variables take precedence over values in config.yaml
// in the working directory. The file is optional.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("gin_mode", "release")
	v.SetDefault("data_dir", "data")
	v.SetDefault("upload_dir", "")
	v.SetDefault("port", "8080")
	v.SetDefault("enable_pprof", false)

	// Keys are looked up as upper case environment variables, e.g. API_URL
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if !v.IsSet("api_url") {
		return Config{}, ErrAPIURLNotSet
	}

	apiURL, err := url.Parse(v.GetString("api_url"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return Config{
		APIURL:           apiURL,
		LogFormat:        v.GetString("log_format"),
		GinMode:          v.GetString("gin_mode"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		DataDir:          v.GetString("data_dir"),
		UploadDir:        v.GetString("upload_dir"),
		Port:             v.GetString("port"),
	}, nil
}
