package storage

import (
	"net"
	"net/http"
	"time"
)

// NewTransport builds the HTTP transport shared by all backends.
func NewTransport(cfg Config) *http.Transport {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}
}

// NewHTTPClient wraps NewTransport for SDKs that take a client rather than a transport.
func NewHTTPClient(cfg Config) *http.Client {
	return &http.Client{Transport: NewTransport(cfg)}
}
