// Package network builds the HTTP clients used to talk to the video API.
package network

import (
	"net/http"
	"time"
)

// Client is the shared client with the default timeout and a tuned transport.
var Client = New(time.Minute, false)

// New returns a client with the given timeout. With fingerprint set, requests are sent
// through a transport that presents a browser TLS handshake.
func New(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = Fingerprinted()
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
