package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means "all
// interfaces", so ":3333" is accepted.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by both binaries.
//
// Flags:
//
//	-a gateway listen address in format [host]:port
//	-u upstream URL relayed to by the gateway
//	-upstream-timeout per-request upstream timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout
//	-auth-address authentication service base URL
//	-auth-base-path key and login endpoint prefix
//	-gateway-address gateway base URL used by the client
//	-request-timeout client request timeout
//	-d local database file
//	-storage-backend local store backend ("sqlite" or "bolt")
//	-identity-hash-key username hash key
//	-probe-path upstream path probed from the home screen
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var upstreamURL string
	var upstreamTimeout, shutdownTimeout, requestTimeout time.Duration
	var authAddress, authBasePath, gatewayAddress string
	var databaseDSN, storageBackend string
	var identityHashKey, probePath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-chat-gate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&listenAddress, "a", "Gateway listen address host:port")
	fs.StringVar(&upstreamURL, "u", "", "Upstream URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&authAddress, "auth-address", "", "Authentication service URL")
	fs.StringVar(&authBasePath, "auth-base-path", "", "Authentication endpoints prefix")
	fs.StringVar(&gatewayAddress, "gateway-address", "", "Gateway URL used by the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database file")
	fs.StringVar(&storageBackend, "storage-backend", "", "Local store backend: sqlite or bolt")
	fs.StringVar(&identityHashKey, "identity-hash-key", "", "Identity hash key")
	fs.StringVar(&probePath, "probe-path", "", "Upstream probe path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			IdentityHashKey: identityHashKey,
			ProbePath:       probePath,
		},
		Adapter: Adapter{
			AuthAddress:    authAddress,
			AuthBasePath:   authBasePath,
			GatewayAddress: gatewayAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend: storageBackend,
			DB:      DB{DSN: databaseDSN},
		},
		Gateway: Gateway{
			Address:         listenAddress.String(),
			UpstreamURL:     upstreamURL,
			UpstreamTimeout: upstreamTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is empty
// or "localhost".
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
		return errors.New("port number is an integer in range 1-65535")
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
