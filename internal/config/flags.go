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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a webhook listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-onebot-api OneBot HTTP API base URL
//	-onebot-token OneBot API access token
//	-onebot-secret callback signature secret
//	-onebot-timeout OneBot API request timeout (e.g., "10s")
//	-request-timeout webhook request timeout (e.g., "30s", "1m")
//	-cera initial premium currency amount
//	-cera-point initial token currency amount
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var oneBotAPIBaseURL string
	var oneBotAccessToken string
	var oneBotCallbackSecret string
	var oneBotRequestTimeout time.Duration
	var requestTimeout time.Duration
	var cera int
	var ceraPoint int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&oneBotAPIBaseURL, "onebot-api", "", "OneBot HTTP API base URL")
	flag.StringVar(&oneBotAccessToken, "onebot-token", "", "OneBot API access token")
	flag.StringVar(&oneBotCallbackSecret, "onebot-secret", "", "Callback signature secret")
	flag.DurationVar(&oneBotRequestTimeout, "onebot-timeout", 0, "OneBot API request timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&cera, "cera", 0, "Initial premium currency amount")
	flag.IntVar(&ceraPoint, "cera-point", 0, "Initial token currency amount")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		OneBot: OneBot{
			APIBaseURL:     oneBotAPIBaseURL,
			AccessToken:    oneBotAccessToken,
			CallbackSecret: oneBotCallbackSecret,
			RequestTimeout: oneBotRequestTimeout,
		},
		Grants: Grants{
			Cera:      cera,
			CeraPoint: ceraPoint,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
