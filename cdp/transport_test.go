package cdp_test

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
	"github.com/agentweb/core/errs"
)

// newEchoServer starts a local CDP-ish websocket server. handler
// receives every decoded message and may write back zero or more
// messages on the same connection.
func newEchoServer(t *testing.T, handler func(conn *websocket.Conn, msg *cdp.Message)) (*httptest.Server, string) {
	t.Helper()
	upgrader := websocket.Upgrader{}
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
			handler(conn, m)
		}
	}))
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	return srv, wsURL
}

func TestSendReceivesMatchingResponse(t *testing.T) {
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		resp := cdp.Message{ID: msg.ID, Result: json.RawMessage(`{"ok":true}`)}
		b, _ := json.Marshal(resp)
		conn.WriteMessage(websocket.TextMessage, b)
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	result, err := transport.Send(context.Background(), "session-1", "Some.method", nil)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if string(result) != `{"ok":true}` {
		t.Errorf("Send() result = %s, want {\"ok\":true}", result)
	}
}

func TestSendPropagatesProtocolError(t *testing.T) {
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		resp := cdp.Message{ID: msg.ID, Error: &cdp.Error{Code: -32000, Message: "Node not found"}}
		b, _ := json.Marshal(resp)
		conn.WriteMessage(websocket.TextMessage, b)
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	_, err = transport.Send(context.Background(), "", "DOM.resolveNode", nil)
	if err == nil {
		t.Fatal("Send() error = nil, want protocol error")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.ProtocolError {
		t.Errorf("Send() error = %v, want ProtocolError", err)
	}
}

func TestSendTimesOutOnContextDeadline(t *testing.T) {
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		// never responds
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = transport.Send(ctx, "", "Never.responds", nil)
	if err == nil {
		t.Fatal("Send() error = nil, want Timeout")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.Timeout {
		t.Errorf("Send() error = %v, want Timeout", err)
	}
}

func TestOnRoutesEventsBySessionAndMethod(t *testing.T) {
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		if msg.Method != "trigger" {
			return
		}
		events := []cdp.Message{
			{SessionID: "session-a", Method: "Target.event", Params: json.RawMessage(`{"from":"a"}`)},
			{SessionID: "session-b", Method: "Target.event", Params: json.RawMessage(`{"from":"b"}`)},
		}
		for _, e := range events {
			b, _ := json.Marshal(e)
			conn.WriteMessage(websocket.TextMessage, b)
		}
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ch := transport.On(ctx, "session-a", "Target.event")

	go func() {
		transport.Send(context.Background(), "", "trigger", nil)
	}()

	select {
	case m := <-ch:
		if !strings.Contains(string(m.Params), `"from":"a"`) {
			t.Errorf("On() delivered %s, want session-a's event", m.Params)
		}
	case <-time.After(time.Second):
		t.Fatal("On() timed out waiting for the subscribed event")
	}
}

func TestOnGlobalSubscriberReceivesSessionScopedEvents(t *testing.T) {
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		if msg.Method != "trigger" {
			return
		}
		e := cdp.Message{SessionID: "session-a", Method: "Target.event", Params: json.RawMessage(`{"from":"a"}`)}
		b, _ := json.Marshal(e)
		conn.WriteMessage(websocket.TextMessage, b)
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	global := transport.On(ctx, "", "Target.event")
	scoped := transport.On(ctx, "session-a", "Target.event")

	go func() {
		transport.Send(context.Background(), "", "trigger", nil)
	}()

	select {
	case m := <-scoped:
		if m.SessionID != "session-a" {
			t.Errorf("scoped subscriber got sessionId %q, want session-a", m.SessionID)
		}
	case <-time.After(time.Second):
		t.Fatal("session-scoped subscriber never received the event")
	}

	select {
	case m := <-global:
		if m.SessionID != "session-a" {
			t.Errorf("global subscriber got sessionId %q, want session-a", m.SessionID)
		}
	case <-time.After(time.Second):
		t.Fatal("global subscriber never received the session-scoped event")
	}
}

func TestBrowserSessionViewUsesEmptySessionID(t *testing.T) {
	var gotSessionID string
	srv, wsURL := newEchoServer(t, func(conn *websocket.Conn, msg *cdp.Message) {
		gotSessionID = msg.SessionID
		resp := cdp.Message{ID: msg.ID, Result: json.RawMessage(`{}`)}
		b, _ := json.Marshal(resp)
		conn.WriteMessage(websocket.TextMessage, b)
	})
	defer srv.Close()

	transport, err := cdp.Dial(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer transport.Close()

	_, err = transport.Browser().Send(context.Background(), "Target.createTarget", nil)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if gotSessionID != "" {
		t.Errorf("Browser() session view sent sessionId = %q, want empty", gotSessionID)
	}
}
