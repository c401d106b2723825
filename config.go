package main

import (
	"net"
	"strconv"
)

const (
	defaultPort     = 3000
	defaultGreeting = "Hello from Terraform demo!"
	serverName      = "terraform-demo"
)

// Config holds the fixed values the demo server runs with.
type Config struct {
	Host     string
	Port     int
	Greeting string
	// Name is sent in the Server response header.
	Name string
}

// DefaultConfig returns the configuration used in production. There is no
// override: the port and greeting are constants.
func DefaultConfig() Config {
	return Config{
		Port:     defaultPort,
		Greeting: defaultGreeting,
		Name:     serverName,
	}
}

// Addr returns the host:port the listener binds.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
