// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a MAGE server address (URL or host:port)
//	-t tile host listen address in format [host]:[port]
//	-d database DSN
//	-icons icons directory
//	-c/-config json file path with configs
//	-user user id
//	-event event id
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "5m")
//	-push-concurrency parallel pushes per sync call
//	-tile-cache-size rendered tiles kept in memory
//	-screen-scale icon pixel ratio
//	-hash-key cache key fingerprint key
//	-log-level log level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("mage", flag.ContinueOnError)

	var tileAddress NetAddress
	var serverAddress string
	var databaseDSN string
	var iconsDir string
	var jsonConfigPath string
	var userID string
	var eventID int64
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var pushConcurrency int
	var tileCacheSize int
	var screenScale float64
	var hashKey string
	var logLevel string

	fs.StringVar(&serverAddress, "a", "", "MAGE server address")
	fs.Var(&tileAddress, "t", "Tile host address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&iconsDir, "icons", "", "Icons directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&userID, "user", "", "User id")
	fs.Int64Var(&eventID, "event", 0, "Event id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	fs.IntVar(&pushConcurrency, "push-concurrency", 0, "Parallel pushes per sync")
	fs.IntVar(&tileCacheSize, "tile-cache-size", 0, "Rendered tiles kept in memory")
	fs.Float64Var(&screenScale, "screen-scale", 0, "Icon pixel ratio")
	fs.StringVar(&hashKey, "hash-key", "", "Cache key fingerprint key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			UserID:   userID,
			EventID:  eventID,
			HashKey:  hashKey,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{IconsDir: iconsDir},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			PushConcurrency: pushConcurrency,
		},
		Tiles: Tiles{
			HTTPAddress: tileAddress.String(),
			CacheSize:   tileCacheSize,
			ScreenScale: screenScale,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
