package interact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/agentweb/core/cdp"
	"github.com/agentweb/core/cdp/accessibility"
	"github.com/agentweb/core/errs"
	"github.com/agentweb/core/interact"
	"github.com/agentweb/core/snapshot"
)

// fakeResults maps a CDP method name to the raw JSON result this test
// server replies with. Methods not listed get "{}".
type fakeResults map[string]string

func startFakeSession(t *testing.T, results fakeResults) (cdp.SessionView, func()) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	var recordedMethods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, b, err := conn.ReadMessage()
			if err != nil {
				return
			}
			m := &cdp.Message{}
			if err := json.Unmarshal(b, m); err != nil {
				continue
			}
			recordedMethods = append(recordedMethods, m.Method)
			body := results[m.Method]
			if body == "" {
				body = "{}"
			}
			resp := cdp.Message{ID: m.ID, Result: json.RawMessage(body)}
			out, _ := json.Marshal(resp)
			conn.WriteMessage(websocket.TextMessage, out)
		}
	}))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	return cdp.SessionView{T: transport, SessionID: "s1"}, func() {
		transport.Close()
		srv.Close()
	}
}

func boxModelAt(x, y float64) string {
	return `{"model":{"content":[` + jsonFloat(x-5) + `,` + jsonFloat(y-5) + `,` +
		jsonFloat(x+5) + `,` + jsonFloat(y-5) + `,` +
		jsonFloat(x+5) + `,` + jsonFloat(y+5) + `,` +
		jsonFloat(x-5) + `,` + jsonFloat(y+5) + `],"width":10,"height":10}}`
}

func jsonFloat(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}

func TestClickResolvesAndDispatchesAtMidpoint(t *testing.T) {
	session, closeFn := startFakeSession(t, fakeResults{
		"DOM.getBoxModel": boxModelAt(100, 200),
	})
	defer closeFn()

	refs := snapshot.RefMap{"7": accessibility.BackendNodeID(42)}
	d := interact.New(session, refs)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Click(ctx, "7"); err != nil {
		t.Fatalf("Click() error: %v", err)
	}
}

func TestClickUnknownReferenceFailsFast(t *testing.T) {
	session, closeFn := startFakeSession(t, fakeResults{})
	defer closeFn()

	d := interact.New(session, snapshot.RefMap{})
	err := d.Click(context.Background(), "missing")
	if err == nil {
		t.Fatal("Click() error = nil, want ReferenceUnknown")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.ReferenceUnknown {
		t.Errorf("Click() error = %v, want ReferenceUnknown", err)
	}
}

func TestPressUnknownKeyFailsFast(t *testing.T) {
	session, closeFn := startFakeSession(t, fakeResults{})
	defer closeFn()

	d := interact.New(session, snapshot.RefMap{})
	err := d.Press(context.Background(), "F13")
	if err == nil {
		t.Fatal("Press() error = nil, want UnknownKey")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.UnknownKey {
		t.Errorf("Press() error = %v, want UnknownKey", err)
	}
}

func TestUploadDispatchesSetFileInputFiles(t *testing.T) {
	session, closeFn := startFakeSession(t, fakeResults{})
	defer closeFn()

	refs := snapshot.RefMap{"3": accessibility.BackendNodeID(9)}
	d := interact.New(session, refs)
	if err := d.Upload(context.Background(), "3", []string{"/tmp/a.txt"}); err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
}

func TestSelectNativeDropdownDispatchesChange(t *testing.T) {
	session, closeFn := startFakeSession(t, fakeResults{
		"DOM.resolveNode":       `{"object":{"objectId":"obj-1"}}`,
		"Runtime.callFunctionOn": `{"result":{"value":true}}`,
	})
	defer closeFn()

	refs := snapshot.RefMap{"5": accessibility.BackendNodeID(11)}
	d := interact.New(session, refs)
	if err := d.Select(context.Background(), "5", "Option A"); err != nil {
		t.Fatalf("Select() error: %v", err)
	}
}
