// Package browserhost launches a Chromium-family browser process (or
// locates one already listening on a debug port) and hands back its
// WebSocket endpoint for cdp.Dial. Flag selection and executable
// discovery are unified onto a single remote-debugging-port + WebSocket
// path on every OS, since this module owns the WebSocket connection
// itself (see cdp.Dial) rather than exec'ing a per-OS transport.
package browserhost

import (
	"fmt"
	"os"
	"sort"
)

// defaultFlags is the fixed flag set this module launches the browser
// with: the automation and background-activity suppression flags every
// one of puppeteer/chrome-launcher/chromedp/chromedriver agrees on.
var defaultFlags = map[string]interface{}{
	"disable-background-networking": true,
	"disable-background-timer-throttling": true,
	"disable-backgrounding-occluded-windows": true,
	"disable-breakpad": true,
	"disable-client-side-phishing-detection": true,
	"disable-component-extensions-with-background-pages": true,
	"disable-default-apps": true,
	"disable-dev-shm-usage": true,
	"disable-extensions": true,
	"disable-features": "Translate,MediaRouter",
	"disable-hang-monitor": true,
	"disable-ipc-flooding-protection": true,
	"disable-popup-blocking": true,
	"disable-prompt-on-repost": true,
	"disable-renderer-backgrounding": true,
	"disable-sync": true,
	"disable-notifications": true,
	"use-fake-ui-for-media-stream": true,
	"use-fake-device-for-media-stream": true,
	"disable-media-session-api": true,
	"autoplay-policy": "no-user-gesture-required",
	"hide-scrollbars": true,
	"enable-automation": true,
	"force-color-profile": "srgb",
	"metrics-recording-only": true,
	"mute-audio": true,
	"no-default-browser-check": true,
	"no-first-run": true,
	"password-store": "basic",
	"use-mock-keychain": true,
}

// DefaultFlags returns a copy of the default command-line flag map,
// which the caller of Launch may extend or override.
func DefaultFlags(headless bool) map[string]interface{} {
	flags := make(map[string]interface{}, len(defaultFlags)+2)
	for k, v := range defaultFlags {
		flags[k] = v
	}
	if headless {
		flags["headless"] = "new"
	}
	if os.Getuid() == 0 {
		// https://chromium.googlesource.com/chromium/src.git/+/master/docs/linux/sandboxing.md
		flags["no-sandbox"] = true
	}
	return flags
}

// toArgs converts a flag map to a sorted "--flag" / "--flag=value" slice,
// so launches are deterministic and easy to diff in logs.
func toArgs(flags map[string]interface{}) []string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		flag := "--" + k
		switch v := flags[k].(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		default:
			args = append(args, fmt.Sprintf("%s=%v", flag, v))
		}
	}
	return args
}
