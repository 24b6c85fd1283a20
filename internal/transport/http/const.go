package http

import "time"

const (
	// DefaultTimeout is the default timeout for catalog API requests.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxLogLength is the default maximum size (in bytes) of a dumped request or response.
	DefaultMaxLogLength = 64 * 1024
)
