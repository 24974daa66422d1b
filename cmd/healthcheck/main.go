// Command healthcheck calls the GenPass Pro health endpoint and exits
// non-zero when the server is unreachable or unhealthy. It is meant for
// container HEALTHCHECK instructions, where no shell or curl is available.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	defaultAddr = "127.0.0.1:8080"
	healthPath  = "/api/v1/health"
	checkTimeout = 2 * time.Second
)

func main() {
	os.Exit(check(normalizeAddr(os.Getenv("GENPASS_LISTEN_ADDR"))))
}

// check returns the process exit code for a health request to addr.
func check(addr string) int {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s%s", addr, healthPath), nil)
	if err != nil {
		return 1
	}

	resp, err := (&http.Client{Timeout: checkTimeout}).Do(req)
	if err != nil {
		return 1
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}

// normalizeAddr points the check at loopback when the server binds every
// interface; the check runs in the same container as the server.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
