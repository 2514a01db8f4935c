package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/lightspeed-go/respkit/net/resp"
)

// Config represents the toolkit configuration.
type Config struct {
	AppName  string
	RunMode  string
	Host     string
	Port     int
	Response *Response
	Logger   *Logger
	Catalog  string
	Viper    *viper.Viper
}

// Response holds response envelope defaults.
type Response struct {
	Debug       bool
	ContentType string
	NoCache     bool
	Abort       bool
}

// Logger holds logger settings.
type Logger struct {
	Level      int
	Format     string
	Output     string
	OutputFile string
}

// Load loads the configuration from the given file. An empty path
// falls back to config.yaml in the working directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("respkit")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Host:     v.GetString("server.host"),
		Port:     getIntOrDefault(v, "server.port", 8080),
		Response: getResponseConfig(v),
		Logger:   getLoggerConfig(v),
		Catalog:  v.GetString("i18n.catalog"),
		Viper:    v,
	}
}

func getResponseConfig(v *viper.Viper) *Response {
	return &Response{
		Debug:       v.GetBool("response.debug"),
		ContentType: getStringOrDefault(v, "response.content_type", resp.DefaultContentType),
		NoCache:     getBoolOrDefault(v, "response.no_cache", true),
		Abort:       getBoolOrDefault(v, "response.abort", true),
	}
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      getIntOrDefault(v, "logger.level", 4),
		Format:     v.GetString("logger.format"),
		Output:     getStringOrDefault(v, "logger.output", "stdout"),
		OutputFile: v.GetString("logger.output_file"),
	}
}

// SendOptions converts the response section into send options for the
// resp package.
func (r *Response) SendOptions() []resp.SendOption {
	var opts []resp.SendOption
	if r.Debug {
		opts = append(opts, resp.WithDebug())
	}
	if r.ContentType != "" && r.ContentType != resp.DefaultContentType {
		opts = append(opts, resp.WithContentType(r.ContentType))
	}
	if r.NoCache {
		opts = append(opts, resp.WithNoCache())
	}
	if !r.Abort {
		opts = append(opts, resp.WithoutAbort())
	}
	return opts
}

// Watch watches the configuration file and invokes the callback with
// the reloaded configuration when it changes.
func (c *Config) Watch(callback func(*Config)) {
	c.Viper.WatchConfig()
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if callback != nil {
			callback(fromViper(c.Viper))
		}
	})
}

// Path returns the absolute path of the loaded config file.
func (c *Config) Path() string {
	p := c.Viper.ConfigFileUsed()
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
