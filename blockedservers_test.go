package blockedservers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/haukened/blockedservers/internal/blocked/common/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hashWildcardExample = "8c7122d652cb7be22d1986f1f30b07fd5108d9c0" // *.example.com
	hashWildcardIPv4    = "8c15fb642b3e8f58480df51798382f1016e748eb" // 192.0.*
	hashLoopback        = "4b84b15bff6ee5796152495a230e45e3d7e947d9" // 127.0.0.1
)

func publishedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBlockedServers_FindBlockedPattern(t *testing.T) {
	blocked := New([]string{hashWildcardExample, hashWildcardIPv4, hashLoopback})

	tests := []struct {
		address string
		want    string
		ok      bool
	}{
		{"mc.example.com", "*.example.com", true},
		{"192.0.2.235", "192.0.*", true},
		{"127.0.0.1", "127.0.0.1", true},
		{"127.0.0.2", "", false},
		{"other.com", "", false},
		{"193.0.2.235", "", false},
		{"", "", false},
		{"localhost", "", false},
	}
	for _, tt := range tests {
		got, ok := blocked.FindBlockedPattern(tt.address)
		assert.Equal(t, tt.ok, ok, "address %q", tt.address)
		assert.Equal(t, tt.want, got, "address %q", tt.address)
		assert.Equal(t, ok, blocked.IsBlocked(tt.address), "address %q", tt.address)
	}
}

func TestBlockedServers_EmptyList(t *testing.T) {
	blocked := New(nil)
	assert.Equal(t, 0, blocked.Len())
	for _, a := range []string{"mc.example.com", "127.0.0.1", "192.0.2.235", ""} {
		assert.False(t, blocked.IsBlocked(a))
	}
}

func TestBlockedServers_HashesUnchanged(t *testing.T) {
	in := []string{"8C7122D652CB7BE22D1986F1F30B07FD5108D9C0", hashLoopback}
	blocked := New(in)
	assert.Equal(t, in, blocked.Hashes())
	assert.Equal(t, 2, blocked.Len())
	assert.True(t, blocked.IsBlocked("mc.example.com"))
}

func TestIsIPv4(t *testing.T) {
	assert.True(t, IsIPv4([]string{"192", "0", "2", "235"}))
	assert.False(t, IsIPv4([]string{"mc", "example", "com"}))
	assert.False(t, IsIPv4([]string{"999", "0", "0", "1"}))
	assert.False(t, IsIPv4([]string{"1", "2", "3"}))
}

func TestFetchFrom(t *testing.T) {
	srv := publishedServer(t, http.StatusOK, hashWildcardExample+"\n"+hashLoopback+"\n")

	blocked, err := FetchFrom(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, blocked.Len())
	assert.True(t, blocked.IsBlocked("mc.example.com"))
	assert.True(t, blocked.IsBlocked("127.0.0.1"))
	assert.False(t, blocked.IsBlocked("192.0.2.235"))
}

func TestFetchFrom_RequestError(t *testing.T) {
	srv := publishedServer(t, http.StatusInternalServerError, "boom")

	blocked, err := FetchFrom(context.Background(), srv.URL)
	assert.Nil(t, blocked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequest))

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
}

func TestFetch_UsesEnvironment(t *testing.T) {
	srv := publishedServer(t, http.StatusOK, hashWildcardIPv4+"\n")
	t.Setenv("BLOCKED_SOURCE_URL", srv.URL)
	t.Setenv("BLOCKED_ENV", "dev")
	t.Setenv("BLOCKED_LOG_LEVEL", "error")

	blocked, err := Fetch(context.Background())
	require.NoError(t, err)
	got, ok := blocked.FindBlockedPattern("192.0.2.235")
	assert.True(t, ok)
	assert.Equal(t, "192.0.*", got)
}

type hostLogger struct {
	calls atomic.Int64
}

func (l *hostLogger) Debug(map[string]any, string) { l.calls.Add(1) }
func (l *hostLogger) Info(map[string]any, string)  { l.calls.Add(1) }
func (l *hostLogger) Warn(map[string]any, string)  { l.calls.Add(1) }
func (l *hostLogger) Error(map[string]any, string) { l.calls.Add(1) }
func (l *hostLogger) Panic(map[string]any, string) {}
func (l *hostLogger) Fatal(map[string]any, string) {}

func TestFetch_ConcurrentCallsKeepHostLogger(t *testing.T) {
	srv := publishedServer(t, http.StatusOK, hashWildcardExample+"\n")
	t.Setenv("BLOCKED_SOURCE_URL", srv.URL)
	t.Setenv("BLOCKED_LOG_LEVEL", "error")

	host := &hostLogger{}
	orig := log.GetLogger()
	t.Cleanup(func() { log.SetLogger(orig) })
	log.SetLogger(host)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blocked, err := Fetch(context.Background())
			if err != nil {
				t.Errorf("Fetch: %v", err)
				return
			}
			if !blocked.IsBlocked("mc.example.com") {
				t.Errorf("expected mc.example.com to be blocked")
			}
			log.Debug(map[string]any{"entries": blocked.Len()}, "host_event")
		}()
	}
	wg.Wait()

	assert.Same(t, host, log.GetLogger())
	assert.Equal(t, int64(4), host.calls.Load())
}

func TestFetch_InvalidConfig(t *testing.T) {
	t.Setenv("BLOCKED_LOG_LEVEL", "chatty")
	_, err := Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRequest))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultURL, cfg.Source.URL)
	cfg.Cache.Size = 1
	assert.NotEqual(t, 1, DefaultConfig().Cache.Size)
}
