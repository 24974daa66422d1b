package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", defaultAddr},
		{"garbage", defaultAddr},
		{":9090", "127.0.0.1:9090"},
		{"0.0.0.0:8080", "127.0.0.1:8080"},
		{"[::]:8080", "127.0.0.1:8080"},
		{"192.168.1.10:8081", "192.168.1.10:8081"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAddr(tt.raw))
		})
	}
}

func TestCheck(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != healthPath || !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")

	assert.Equal(t, 0, check(addr))

	healthy.Store(false)
	assert.Equal(t, 1, check(addr))

	srv.Close()
	assert.Equal(t, 1, check(addr), "unreachable server")
}
