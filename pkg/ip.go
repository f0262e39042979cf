package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller address, preferring the headers set by the reverse proxy.
// The port, if any, is stripped.
func ClientIP(r *http.Request) string {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			addr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
