package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"KeyTicker/ticker"
)

// Path is the HTTP path the keyboard hook connects to.
const Path = "/keys"

// maxMessageSize bounds a single notification frame.
const maxMessageSize = 4 * 1024

// ErrNotLoopback is returned when the source is asked to listen on an
// address other hosts could reach.
var ErrNotLoopback = errors.New("websocket feed must listen on a loopback address")

var upgrader = websocket.Upgrader{
	CheckOrigin:     checkOrigin,
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketSource accepts notifications from an external keyboard hook
// process over a local WebSocket connection. Every text frame carries one
// JSON payload. Several hook connections may be open at once; their events
// are merged in arrival order.
type WebSocketSource struct {
	addr string

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
	conns    map[*websocket.Conn]struct{}
	events   chan ticker.RawEvent
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewWebSocketSource returns a source listening on addr once started.
func NewWebSocketSource(addr string) *WebSocketSource {
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	return &WebSocketSource{addr: addr}
}

// Start implements Source.
func (s *WebSocketSource) Start(ctx context.Context) (<-chan ticker.RawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return nil, errors.New("websocket source already started")
	}

	host, _, err := net.SplitHostPort(s.addr)
	if err != nil {
		return nil, fmt.Errorf("listen address %s: %w", s.addr, err)
	}
	if !isLoopbackHost(host) {
		return nil, fmt.Errorf("%w: %s", ErrNotLoopback, s.addr)
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveKeys)

	s.listener = ln
	s.conns = make(map[*websocket.Conn]struct{})
	s.events = make(chan ticker.RawEvent, 256)
	s.done = make(chan struct{})
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("websocket feed stopped", "error", err)
		}
	}()
	return s.events, nil
}

// URL returns the address the keyboard hook should dial, or "" before
// Start.
func (s *WebSocketSource) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return "ws://" + s.listener.Addr().String() + Path
}

// checkOrigin accepts the native hook, which sends no Origin header, and
// pages served from this machine. Any other web page is refused.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return isLoopbackHost(u.Hostname())
}

func isLoopbackHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func (s *WebSocketSource) serveKeys(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	s.mu.Lock()
	select {
	case <-s.done:
		s.mu.Unlock()
		conn.Close()
		return
	default:
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
		s.wg.Done()
	}()

	slog.Info("keyboard hook connected", "remote", r.RemoteAddr)
	conn.SetReadLimit(maxMessageSize)
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("keyboard hook read ended", "remote", r.RemoteAddr, "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			slog.Warn("dropping non-text frame", "remote", r.RemoteAddr)
			continue
		}

		ev, err := Decode(data)
		if err != nil {
			slog.Warn("dropping key notification", "remote", r.RemoteAddr, "error", err)
			continue
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Stop implements Source. Open hook connections are closed and the event
// channel is closed once every connection handler has returned.
func (s *WebSocketSource) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.server == nil {
			s.mu.Unlock()
			return
		}
		close(s.done)
		err = s.server.Close()
		for conn := range s.conns {
			conn.Close()
		}
		s.mu.Unlock()

		s.wg.Wait()
		close(s.events)
	})
	return err
}
