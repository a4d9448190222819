package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/personql/internal/flagx"
	"github.com/dmitrijs2005/personql/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "10s" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP   string          `json:"endpoint_addr_http"`
	EndpointPath       string          `json:"endpoint_path"`
	PersonsSource      string          `json:"persons_source"`
	RemotePersonsURL   string          `json:"remote_persons_url"`
	RemoteFetchTimeout *timex.Duration `json:"remote_fetch_timeout"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout"`
	LogLevel           string          `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c / -config onto
// config. Keys missing from the file leave the current value untouched.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.EndpointPath, c.EndpointPath)
	overlay(&config.PersonsSource, c.PersonsSource)
	overlay(&config.RemotePersonsURL, c.RemotePersonsURL)
	overlay(&config.LogLevel, c.LogLevel)

	if c.RemoteFetchTimeout != nil {
		config.RemoteFetchTimeout = c.RemoteFetchTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
