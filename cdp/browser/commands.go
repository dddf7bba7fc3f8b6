// Package browser implements the subset of the CDP Browser domain this
// module needs to close the browser gracefully and suppress permission
// prompts. See
// https://chromedevtools.github.io/devtools-protocol/tot/Browser/.
package browser

import (
	"context"

	"github.com/agentweb/core/cdp"
)

// Close contains the (empty) parameters of "Browser.close".
type Close struct{}

// NewClose constructs Close.
func NewClose() *Close { return &Close{} }

// Do sends the command.
func (cmd *Close) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Browser.close", cmd)
	return err
}

// PermissionType is the CDP "Browser.PermissionType" enum.
type PermissionType string

// The permission categories this module suppresses by default so a
// headless agent never blocks on a native prompt.
const (
	PermissionGeolocation    PermissionType = "geolocation"
	PermissionNotifications  PermissionType = "notifications"
	PermissionMidi           PermissionType = "midi"
	PermissionDurableStorage PermissionType = "durableStorage"
	PermissionCamera         PermissionType = "videoCapture"
	PermissionMicrophone     PermissionType = "audioCapture"
	PermissionBackgroundSync PermissionType = "backgroundSync"
	PermissionSensors        PermissionType = "sensors"
	PermissionIdleDetection  PermissionType = "idleDetection"
)

// PermissionSetting is the CDP "Browser.PermissionSetting" enum.
type PermissionSetting string

// PermissionSetting values.
const (
	PermissionGranted PermissionSetting = "granted"
	PermissionDenied  PermissionSetting = "denied"
)

// SetPermission contains the parameters of "Browser.setPermission".
type SetPermission struct {
	Origin     string                `json:"origin,omitempty"`
	Permission permissionDescriptor  `json:"permission"`
	Setting    PermissionSetting     `json:"setting"`
}

type permissionDescriptor struct {
	Name PermissionType `json:"name"`
}

// NewSetPermission constructs SetPermission.
func NewSetPermission(origin string, kind PermissionType, setting PermissionSetting) *SetPermission {
	return &SetPermission{Origin: origin, Permission: permissionDescriptor{Name: kind}, Setting: setting}
}

// Do sends the command.
func (cmd *SetPermission) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Browser.setPermission", cmd)
	return err
}
