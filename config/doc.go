// Package config loads toolkit configuration from a yaml file via
// viper, with environment variable overrides (RESPKIT_ prefix) and
// fsnotify-driven reload through Watch.
//
// Example config.yaml:
//
//	app_name: demo
//	run_mode: debug
//	server:
//	  host: 127.0.0.1
//	  port: 8080
//	response:
//	  debug: false
//	  no_cache: true
//	  abort: true
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
//	i18n:
//	  catalog: translations.yaml
package config
