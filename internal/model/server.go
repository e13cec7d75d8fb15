package model

import (
	"context"
	"net"
)

// SecurityLayer produces the network listener the server accepts on,
// plain or TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a transport server with lifecycle methods.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
