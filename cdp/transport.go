// Package cdp implements the raw Chrome DevTools Protocol transport: a
// single WebSocket connection to the browser, flattened-session request
// routing, and event fan-out. Per-domain command bindings live in
// sub-packages (cdp/page, cdp/dom, cdp/input, ...) which call back into
// this package's Send/SessionView for the actual wire work.
package cdp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/agentweb/core/errs"
)

// Error is the "error" field of a CDP response message.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// Message is a generic CDP message, sent to or received from the browser.
type Message struct {
	ID        int64           `json:"id,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     *Error          `json:"error,omitempty"`
}

type pendingRequest struct {
	ch chan *Message
}

// Transport owns the single WebSocket connection to a browser instance
// and multiplexes every session's traffic over it using CDP's flattened
// mode (a top-level "sessionId" field on both requests and events,
// rather than nested per-session connections).
type Transport struct {
	log  *zap.Logger
	conn *websocket.Conn

	writeMu sync.Mutex
	nextID  int64

	mu       sync.Mutex
	pending  map[int64]*pendingRequest
	eventSub map[string][]chan *Message // keyed by "sessionId\x00method", sessionId "" means global

	closed   chan struct{}
	closeErr error
	closeOne sync.Once
}

// Dial opens a WebSocket connection to the given CDP endpoint (a
// "ws://" URL, typically obtained from the browser's
// "/json/version" HTTP discovery endpoint or scraped from its STDERR
// banner) and starts the background read pump.
func Dial(ctx context.Context, wsURL string, log *zap.Logger) (*Transport, error) {
	if log == nil {
		log = zap.NewNop()
	}
	d := websocket.Dialer{}
	conn, _, err := d.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, errs.New(errs.NoBrowser, err)
	}
	t := &Transport{
		log:      log,
		conn:     conn,
		nextID:   1,
		pending:  make(map[int64]*pendingRequest),
		eventSub: make(map[string][]chan *Message),
		closed:   make(chan struct{}),
	}
	go t.readPump()
	return t, nil
}

func (t *Transport) readPump() {
	defer close(t.closed)
	for {
		_, b, err := t.conn.ReadMessage()
		if err != nil {
			t.closeErr = errs.New(errs.TransportLost, err)
			t.log.Warn("cdp transport read failed", zap.Error(err))
			return
		}
		t.log.Debug("cdp recv", zap.ByteString("message", b))
		m := &Message{}
		if err := json.Unmarshal(b, m); err != nil {
			t.log.Warn("cdp received malformed message", zap.Error(err))
			continue
		}
		if m.Method == "" {
			t.mu.Lock()
			req, ok := t.pending[m.ID]
			if ok {
				delete(t.pending, m.ID)
			}
			t.mu.Unlock()
			if ok {
				req.ch <- m
			}
			continue
		}
		key := m.SessionID + "\x00" + m.Method
		t.mu.Lock()
		subs := append([]chan *Message(nil), t.eventSub[key]...)
		if m.SessionID != "" {
			subs = append(subs, t.eventSub["\x00"+m.Method]...)
		}
		t.mu.Unlock()
		for _, ch := range subs {
			select {
			case ch <- m:
			default:
				// A slow or abandoned subscriber must never block the
				// read pump; drop the event for that one subscriber.
			}
		}
	}
}

// Closed returns a channel that is closed when the transport's
// connection ends, for callers that want to select on it.
func (t *Transport) Closed() <-chan struct{} { return t.closed }

// Err returns the reason the transport closed, if any.
func (t *Transport) Err() error { return t.closeErr }

// Close ends the WebSocket connection.
func (t *Transport) Close() error {
	var err error
	t.closeOne.Do(func() {
		err = t.conn.Close()
	})
	return err
}

// Send issues a CDP command scoped to sessionID ("" for the browser-level
// session) and blocks until the matching response arrives or ctx is done.
func (t *Transport) Send(ctx context.Context, sessionID, method string, params interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return nil, errs.New(errs.ProtocolError, err)
		}
		raw = b
	}

	id := atomic.AddInt64(&t.nextID, 1)
	m := Message{ID: id, SessionID: sessionID, Method: method, Params: raw}

	ch := make(chan *Message, 1)
	t.mu.Lock()
	t.pending[id] = &pendingRequest{ch: ch}
	t.mu.Unlock()

	b, err := json.Marshal(m)
	if err != nil {
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		return nil, errs.New(errs.ProtocolError, err)
	}

	t.writeMu.Lock()
	t.log.Debug("cdp send", zap.ByteString("message", b))
	err = t.conn.WriteMessage(websocket.TextMessage, b)
	t.writeMu.Unlock()
	if err != nil {
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		return nil, errs.New(errs.TransportLost, err)
	}

	select {
	case resp := <-ch:
		if resp.Error != nil {
			return nil, errs.Protocol(resp.Error.Code, resp.Error.Message)
		}
		return resp.Result, nil
	case <-t.closed:
		return nil, errs.New(errs.TransportLost, t.closeErr)
	case <-ctx.Done():
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		return nil, errs.New(errs.Timeout, ctx.Err())
	}
}

// On subscribes to every future occurrence of a CDP event for the given
// session ("" for browser-level events), delivered on the returned
// channel until ctx is done. The channel is never closed by Off-less
// cancellation; callers drain it until ctx.Done() to avoid leaking the
// subscription entry.
func (t *Transport) On(ctx context.Context, sessionID, method string) <-chan *Message {
	key := sessionID + "\x00" + method
	ch := make(chan *Message, 16)
	t.mu.Lock()
	t.eventSub[key] = append(t.eventSub[key], ch)
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		t.mu.Lock()
		subs := t.eventSub[key]
		for i, c := range subs {
			if c == ch {
				t.eventSub[key] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		t.mu.Unlock()
	}()
	return ch
}

// Once waits for a single occurrence of a CDP event.
func (t *Transport) Once(ctx context.Context, sessionID, method string) (*Message, error) {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := t.On(subCtx, sessionID, method)
	select {
	case m := <-ch:
		return m, nil
	case <-t.closed:
		return nil, errs.New(errs.TransportLost, t.closeErr)
	case <-ctx.Done():
		return nil, errs.New(errs.Timeout, ctx.Err())
	}
}

// SessionView projects a Transport onto one fixed sessionID, the shape
// every cdp/<domain> command actually depends on: an explicit value
// rather than a context key, so commands take a SessionView parameter
// instead of reaching into context.Context themselves.
type SessionView struct {
	T         *Transport
	SessionID string
}

// Send issues a command scoped to this session view.
func (s SessionView) Send(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	return s.T.Send(ctx, s.SessionID, method, params)
}

// On subscribes to an event scoped to this session view.
func (s SessionView) On(ctx context.Context, method string) <-chan *Message {
	return s.T.On(ctx, s.SessionID, method)
}

// Once waits for one event scoped to this session view.
func (s SessionView) Once(ctx context.Context, method string) (*Message, error) {
	return s.T.Once(ctx, s.SessionID, method)
}

// Browser returns a SessionView scoped to the browser-level target
// ("" session ID), for commands like Target.createTarget that are not
// sent within a page session.
func (t *Transport) Browser() SessionView {
	return SessionView{T: t, SessionID: ""}
}
