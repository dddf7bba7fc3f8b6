package browserhost

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agentweb/core/errs"
)

// executables lists candidate binary names/paths to search for when the
// caller does not specify one, ordered the way chrome-launcher and
// chromedp do: stable channel, then Chromium, then the beta and
// unstable channels.
var executables = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser",
	"chrome", "Chromium", "google-chrome-beta", "google-chrome-unstable",
}

// wsAddrPattern extracts the WebSocket debugger URL Chromium prints to
// STDERR on startup ("DevTools listening on ws://...").
var wsAddrPattern = regexp.MustCompile(`DevTools listening on (ws://\S+)`)

// webSocketDebuggerTimeout is the maximum time to wait for the browser
// to report its WebSocket endpoint.
const webSocketDebuggerTimeout = 10 * time.Second

// Process represents a browser instance this module launched (as
// opposed to one it only connected to); Close kills it and removes its
// user-data directory.
type Process struct {
	cmd         *exec.Cmd
	UserDataDir string
	WSEndpoint  string
	log         *zap.Logger
}

// Options configures Launch.
type Options struct {
	// ExecutablePath overrides automatic discovery.
	ExecutablePath string
	// Headless runs the browser without a visible window. The zero value
	// launches a headed browser; config.Default() sets Headless to true.
	Headless bool
	// UserDataDir overrides the default per-process temp profile
	// directory. The default is unique per call (named with
	// google/uuid), so concurrent launches from the same process never
	// collide even when started in the same second.
	UserDataDir string
	// ExtraFlags are merged over DefaultFlags, letting the caller add or
	// override any command-line switch (e.g. "proxy-server").
	ExtraFlags map[string]interface{}
	Log        *zap.Logger
}

// Find locates a usable browser executable.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := exec.LookPath(explicit); err == nil {
			return explicit, nil
		}
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
		return "", errs.Newf(errs.NoBrowser, "browser executable not found: %s", explicit)
	}
	for _, e := range executables {
		if path, err := exec.LookPath(e); err == nil {
			return path, nil
		}
	}
	return "", errs.Newf(errs.NoBrowser, "no Chromium-family browser found on PATH")
}

// Launch starts a new browser process (headless when opts.Headless) with a
// deterministic flag set, and returns once its WebSocket debugger
// endpoint has been discovered.
func Launch(ctx context.Context, opts Options) (*Process, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	path, err := Find(opts.ExecutablePath)
	if err != nil {
		return nil, err
	}

	userDataDir := opts.UserDataDir
	if userDataDir == "" {
		userDataDir = fmt.Sprintf("%s/agentcore-%s", os.TempDir(), uuid.NewString())
	}
	if err := os.MkdirAll(userDataDir, 0o755); err != nil {
		return nil, errs.New(errs.LaunchFailed, err)
	}

	headless := true
	if !opts.Headless {
		headless = opts.Headless
	}
	flags := DefaultFlags(headless)
	for k, v := range opts.ExtraFlags {
		flags[k] = v
	}
	flags["remote-debugging-port"] = "0"
	flags["user-data-dir"] = userDataDir

	args := append(toArgs(flags), "about:blank")
	log.Info("launching browser", zap.String("path", path), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, path, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errs.New(errs.LaunchFailed, err)
	}
	if err := cmd.Start(); err != nil {
		os.RemoveAll(userDataDir)
		return nil, errs.New(errs.LaunchFailed, err)
	}

	p := &Process{cmd: cmd, UserDataDir: userDataDir, log: log}

	endpoint, err := scanForWebSocketEndpoint(stderr)
	if err != nil {
		cmd.Process.Kill()
		os.RemoveAll(userDataDir)
		return nil, err
	}
	p.WSEndpoint = endpoint

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug("browser process ended", zap.Error(err))
		}
	}()

	return p, nil
}

func scanForWebSocketEndpoint(stderr interface{ Read([]byte) (int, error) }) (string, error) {
	type result struct {
		endpoint string
		err      error
	}
	ch := make(chan result, 1)
	go func() {
		buf := make([]byte, 0, 4096)
		chunk := make([]byte, 4096)
		for {
			n, err := stderr.Read(chunk)
			if n > 0 {
				buf = append(buf, chunk[:n]...)
				if m := wsAddrPattern.FindSubmatch(buf); m != nil {
					ch <- result{endpoint: string(m[1])}
					return
				}
			}
			if err != nil {
				ch <- result{err: errs.New(errs.LaunchFailed, err)}
				return
			}
		}
	}()
	select {
	case r := <-ch:
		return r.endpoint, r.err
	case <-time.After(webSocketDebuggerTimeout):
		return "", errs.Newf(errs.LaunchFailed, "timed out waiting for browser WebSocket endpoint")
	}
}

// Close terminates the browser process and removes its user data
// directory.
func (p *Process) Close() error {
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	return os.RemoveAll(p.UserDataDir)
}

// Connect discovers the WebSocket endpoint of an already-running
// browser listening on debugPort (the hybrid fallback path: handing
// off to an externally-managed headed browser), via the
// "/json/version" HTTP discovery endpoint CDP browsers always expose.
func Connect(ctx context.Context, debugPort int) (string, error) {
	if !portOpen(debugPort) {
		return "", errs.Newf(errs.NoBrowser, "no browser listening on debug port %d", debugPort)
	}
	url := fmt.Sprintf("http://127.0.0.1:%d/json/version", debugPort)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errs.New(errs.NoBrowser, err)
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", errs.New(errs.NoBrowser, err)
	}
	defer resp.Body.Close()

	var payload struct {
		WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errs.New(errs.NoBrowser, err)
	}
	if payload.WebSocketDebuggerURL == "" {
		return "", errs.Newf(errs.NoBrowser, "debug port %d reported no WebSocket endpoint", debugPort)
	}
	return payload.WebSocketDebuggerURL, nil
}

// portOpen probes the debug port before Connect issues its HTTP
// request, so a missing headed browser fails fast with NoBrowser
// rather than an HTTP timeout.
func portOpen(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
