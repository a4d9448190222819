package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/personql/internal/flagx"
)

var serverFlags = []string{"-a", "-p", "-s", "-r", "-t", "-w", "-l"}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":4000")
//	-p string   GraphQL endpoint path
//	-s string   persons source for allPersons: local or remote
//	-r string   remote persons URL
//	-t int      remote fetch timeout, seconds
//	-w int      shutdown grace period, seconds
//	-l string   log level
//
// Duration flags are whole seconds and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.EndpointPath, "p", config.EndpointPath, "GraphQL endpoint path")
	fs.StringVar(&config.PersonsSource, "s", config.PersonsSource, "persons source for allPersons (local|remote)")
	fs.StringVar(&config.RemotePersonsURL, "r", config.RemotePersonsURL, "remote persons URL")

	fetchTimeout := fs.Int("t", int(config.RemoteFetchTimeout.Seconds()), "remote fetch timeout (in seconds)")
	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RemoteFetchTimeout = time.Duration(*fetchTimeout) * time.Second
	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
