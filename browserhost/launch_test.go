package browserhost

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/agentweb/core/errs"
)

func TestFindExplicitPathNotFound(t *testing.T) {
	_, err := Find("/no/such/binary-xyz")
	if err == nil {
		t.Fatal("Find() error = nil, want NoBrowser")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.NoBrowser {
		t.Errorf("Find() error = %v, want NoBrowser", err)
	}
}

func TestFindExplicitPathOnPATH(t *testing.T) {
	// "ls" is assumed present on the test runner's PATH.
	path, err := Find("ls")
	if err != nil {
		t.Fatalf("Find(\"ls\") error: %v", err)
	}
	if path == "" {
		t.Error("Find(\"ls\") returned an empty path")
	}
}

func TestConnectReadsWebSocketDebuggerURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"webSocketDebuggerUrl": "ws://127.0.0.1:9999/devtools/browser/abc",
		})
	}))
	defer srv.Close()

	port, err := strconv.Atoi(strings.TrimPrefix(srv.URL, "http://127.0.0.1:"))
	if err != nil {
		t.Fatalf("parsing test server port: %v", err)
	}

	ws, err := Connect(context.Background(), port)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if ws != "ws://127.0.0.1:9999/devtools/browser/abc" {
		t.Errorf("Connect() = %q, want the discovered WebSocket URL", ws)
	}
}

func TestConnectNoListenerFailsFast(t *testing.T) {
	_, err := Connect(context.Background(), 1)
	if err == nil {
		t.Fatal("Connect() error = nil, want NoBrowser")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.NoBrowser {
		t.Errorf("Connect() error = %v, want NoBrowser", err)
	}
}

type fakeReader struct {
	chunks [][]byte
	i      int
}

func (f *fakeReader) Read(p []byte) (int, error) {
	if f.i >= len(f.chunks) {
		return 0, io.EOF
	}
	n := copy(p, f.chunks[f.i])
	f.i++
	return n, nil
}

func TestScanForWebSocketEndpointFindsURL(t *testing.T) {
	r := &fakeReader{chunks: [][]byte{
		[]byte("some startup noise\n"),
		[]byte("DevTools listening on ws://127.0.0.1:12345/devtools/browser/xyz\n"),
	}}
	endpoint, err := scanForWebSocketEndpoint(r)
	if err != nil {
		t.Fatalf("scanForWebSocketEndpoint() error: %v", err)
	}
	if endpoint != "ws://127.0.0.1:12345/devtools/browser/xyz" {
		t.Errorf("scanForWebSocketEndpoint() = %q, want the parsed URL", endpoint)
	}
}

func TestScanForWebSocketEndpointEOFWithoutMatch(t *testing.T) {
	r := &fakeReader{chunks: [][]byte{[]byte("never prints the endpoint\n")}}
	_, err := scanForWebSocketEndpoint(r)
	if err == nil {
		t.Fatal("scanForWebSocketEndpoint() error = nil, want LaunchFailed")
	}
}
