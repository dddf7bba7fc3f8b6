package browserhost

import (
	"os"
	"strings"
	"testing"
)

func TestDefaultFlagsAddsHeadlessWhenRequested(t *testing.T) {
	headless := DefaultFlags(true)
	if headless["headless"] != "new" {
		t.Errorf("DefaultFlags(true)[headless] = %v, want \"new\"", headless["headless"])
	}
	headed := DefaultFlags(false)
	if _, ok := headed["headless"]; ok {
		t.Error("DefaultFlags(false) set a headless flag, want none")
	}
}

func TestDefaultFlagsReturnsIndependentCopies(t *testing.T) {
	a := DefaultFlags(true)
	a["extra-test-flag"] = true
	b := DefaultFlags(true)
	if _, ok := b["extra-test-flag"]; ok {
		t.Error("DefaultFlags() shares the underlying map across calls")
	}
}

func TestDefaultFlagsAddsNoSandboxForRoot(t *testing.T) {
	flags := DefaultFlags(true)
	if os.Getuid() == 0 {
		if flags["no-sandbox"] != true {
			t.Error("DefaultFlags() running as root did not set no-sandbox")
		}
	} else if _, ok := flags["no-sandbox"]; ok {
		t.Error("DefaultFlags() running as non-root set no-sandbox")
	}
}

func TestDefaultFlagsIncludesMediaAndAutoplaySuppression(t *testing.T) {
	flags := DefaultFlags(true)
	want := map[string]interface{}{
		"use-fake-ui-for-media-stream":     true,
		"use-fake-device-for-media-stream": true,
		"autoplay-policy":                  "no-user-gesture-required",
		"hide-scrollbars":                  true,
	}
	for k, v := range want {
		if flags[k] != v {
			t.Errorf("DefaultFlags()[%q] = %v, want %v", k, flags[k], v)
		}
	}
	if fv, _ := flags["disable-features"].(string); !strings.Contains(fv, "MediaRouter") {
		t.Errorf("DefaultFlags()[disable-features] = %q, want it to include MediaRouter", fv)
	}
}

func TestToArgsSortsAndFormats(t *testing.T) {
	flags := map[string]interface{}{
		"mute-audio":      true,
		"disable-sync":    false,
		"force-color-profile": "srgb",
	}
	args := toArgs(flags)
	want := []string{"--force-color-profile=srgb", "--mute-audio"}
	if len(args) != len(want) {
		t.Fatalf("toArgs() = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("toArgs()[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
