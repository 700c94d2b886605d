// Package http provides a configured HTTP client for outbound calls to
// market data providers.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds an HTTP client for external API calls. The
// transport is set explicitly: http.DefaultClient carries no timeout at
// all, and quote lookups must never hang a request handler.
//
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: 100, keeps connections warm under batch refreshes
//   - Client.Timeout: whole-request timeout, supplied by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
