package feed

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"KeyTicker/ticker"
)

func TestWebSocketSourceDeliversAndDropsMalformed(t *testing.T) {
	src := NewWebSocketSource("127.0.0.1:0")
	events, err := src.Start(context.Background())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer src.Stop()

	conn, _, err := websocket.DefaultDialer.Dial(src.URL(), nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	frames := []string{
		`{"mode":"KeyPress","message":"ControlLeft"}`,
		`{"mode":"Some"}`,
		`garbage`,
		`{"mode":"Some","message":"\u0003"}`,
	}
	for _, f := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	want := []ticker.RawEvent{
		{Kind: ticker.KeyPress, Code: "ControlLeft"},
		{Kind: ticker.CharacterOnly, Code: "\x03"},
	}
	for _, w := range want {
		select {
		case ev := <-events:
			if ev != w {
				t.Fatalf("Expected %+v, got %+v", w, ev)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Timed out waiting for %+v", w)
		}
	}
}

func TestWebSocketSourceStopClosesChannel(t *testing.T) {
	src := NewWebSocketSource("")
	events, err := src.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(src.URL(), nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	if err := src.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	select {
	case _, ok := <-events:
		if ok {
			t.Error("Expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Event channel not closed after Stop")
	}
}

func TestWebSocketSourceStartTwice(t *testing.T) {
	src := NewWebSocketSource("")
	if _, err := src.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()
	if _, err := src.Start(context.Background()); err == nil {
		t.Error("Expected error on second Start")
	}
}

func TestWebSocketSourceRefusesNonLoopback(t *testing.T) {
	for _, addr := range []string{"0.0.0.0:0", ":0", "192.0.2.1:0"} {
		src := NewWebSocketSource(addr)
		if _, err := src.Start(context.Background()); !errors.Is(err, ErrNotLoopback) {
			src.Stop()
			t.Errorf("Start(%q): expected ErrNotLoopback, got %v", addr, err)
		}
	}
}

func TestCheckOrigin(t *testing.T) {
	cases := map[string]bool{
		"":                      true,
		"http://localhost:3000": true,
		"http://127.0.0.1":      true,
		"http://[::1]:8080":     true,
		"https://example.com":   false,
		"http://192.168.0.5":    false,
		"::not a url":           false,
	}
	for origin, want := range cases {
		r, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1/keys", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		if got := checkOrigin(r); got != want {
			t.Errorf("checkOrigin(%q) = %v, want %v", origin, got, want)
		}
	}
}

func TestWebSocketSourceRejectsForeignPages(t *testing.T) {
	src := NewWebSocketSource("")
	if _, err := src.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()

	header := http.Header{"Origin": []string{"https://example.com"}}
	conn, resp, err := websocket.DefaultDialer.Dial(src.URL(), header)
	if err == nil {
		conn.Close()
		t.Fatal("Expected the handshake to be refused")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403, got %v", resp)
	}
}
