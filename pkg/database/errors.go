package database

import "errors"

// ErrNotReady is returned when the startup ping cannot reach the server.
var ErrNotReady = errors.New("database not reachable")
