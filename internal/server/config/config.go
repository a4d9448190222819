// Package config handles configuration for the personql server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/personql/internal/logging"
)

// Snapshot sources for the allPersons query.
const (
	PersonsSourceLocal  = "local"
	PersonsSourceRemote = "remote"
)

// Config holds runtime settings for the personql server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the GraphQL HTTP endpoint.
//   - EndpointPath: URL path the GraphQL handler is mounted on.
//   - PersonsSource: where allPersons reads from, "local" or "remote".
//   - RemotePersonsURL: JSON endpoint queried when PersonsSource is "remote".
//   - RemoteFetchTimeout: HTTP client timeout for the remote fetch; 0 disables it.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP   string
	EndpointPath       string
	PersonsSource      string
	RemotePersonsURL   string
	RemoteFetchTimeout time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":4000"
	c.EndpointPath = "/graphql"
	c.PersonsSource = PersonsSourceLocal
	c.RemotePersonsURL = "http://localhost:3000/persons"
	c.RemoteFetchTimeout = 10 * time.Second
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.PersonsSource {
	case PersonsSourceLocal:
	case PersonsSourceRemote:
		if c.RemotePersonsURL == "" {
			return fmt.Errorf("persons source %q requires a remote persons URL", c.PersonsSource)
		}
	default:
		return fmt.Errorf("unknown persons source %q", c.PersonsSource)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.EndpointPath == "" || c.EndpointPath[0] != '/' {
		return fmt.Errorf("endpoint path %q must start with /", c.EndpointPath)
	}

	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
