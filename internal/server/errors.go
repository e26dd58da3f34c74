package server

import "errors"

// errNoListenAddress is returned when the server is constructed without a
// configured HTTP address.
var errNoListenAddress = errors.New("no http listen address configured")
