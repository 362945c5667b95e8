package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// parseFlags parses confctl flags from args. Positional arguments left after
// the flags are returned in StructuredConfig.Args, and visited names every
// flag given on the command line.
//
// Flags:
//
//	-c/-config base configuration file path or URL
//	-f/-format base configuration format (json, yaml)
//	-e/-env-file .env file layered behind the process environment (repeatable)
//	-p/-prefix overlay variable prefix
//	-s/-separator overlay name separator
//	-no-env serve the base configuration without overlay
//	-a/-address server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-fetch-timeout remote configuration fetch timeout
//	-log-level zerolog level name
//	-settings json file path with confctl settings
func parseFlags(args []string) (*StructuredConfig, map[string]bool, error) {
	var serverAddress NetAddress
	var sourcePath, sourceFormat string
	var envFiles stringList
	var prefix, separator string
	var noEnv bool
	var requestTimeout, fetchTimeout time.Duration
	var logLevel string
	var settingsPath string

	fs := flag.NewFlagSet("confctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&sourcePath, "c", "", "Base configuration file path or URL")
	fs.StringVar(&sourcePath, "config", "", "Base configuration file path or URL (alias)")
	fs.StringVar(&sourceFormat, "f", "", "Base configuration format")
	fs.StringVar(&sourceFormat, "format", "", "Base configuration format (alias)")
	fs.Var(&envFiles, "e", ".env file path")
	fs.Var(&envFiles, "env-file", ".env file path (alias)")
	fs.StringVar(&prefix, "p", "", "Overlay variable prefix")
	fs.StringVar(&prefix, "prefix", "", "Overlay variable prefix (alias)")
	fs.StringVar(&separator, "s", "", "Overlay name separator")
	fs.StringVar(&separator, "separator", "", "Overlay name separator (alias)")
	fs.BoolVar(&noEnv, "no-env", false, "Disable the environment overlay")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&serverAddress, "address", "Net address host:port (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Remote configuration fetch timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&settingsPath, "settings", "", "JSON settings file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	visited := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	return &StructuredConfig{
		Source: Source{
			Path:     sourcePath,
			Format:   sourceFormat,
			EnvFiles: envFiles,
			Timeout:  fetchTimeout,
		},
		Overlay: Overlay{
			Prefix:    prefix,
			Separator: separator,
			Disabled:  noEnv,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		SettingsFilePath: settingsPath,
		Args:             fs.Args(),
	}, visited, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
