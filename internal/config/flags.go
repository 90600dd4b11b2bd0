package config

import (
	"errors"
	"flag"
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

// parseFlags registers all configuration flags on fs and parses args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-metrics-address metrics server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN
//	-db-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-api-key shared API key
//	-answer-author username answers are attributed to
//	-server-url API server base URL (client)
//	-client-timeout outbound request timeout (client)
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var apiKey string
	var answerAuthor string
	var requestTimeout time.Duration
	var serverURL string
	var clientTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Net metrics server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiKey, "api-key", "", "Shared API key")
	fs.StringVar(&answerAuthor, "answer-author", "", "Username answers are attributed to")
	fs.StringVar(&serverURL, "server-url", "", "API server base URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			APIKey:       apiKey,
			AnswerAuthor: answerAuthor,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			MetricsAddress: metricsAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that
// the value does not override other configuration sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
