package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"KeyTicker/ticker"
)

// Keys named by the final byte of a cursor or SS3 sequence, e.g. "\x1b[A"
// or "\x1bOP".
var finalKeys = map[byte]string{
	'A': "UpArrow",
	'B': "DownArrow",
	'C': "RightArrow",
	'D': "LeftArrow",
	'H': "Home",
	'F': "End",
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

// Keys named by the number of a "\x1b[<n>~" sequence.
var tildeKeys = map[string]string{
	"1": "Home", "2": "Insert", "3": "Delete", "4": "End",
	"5": "PageUp", "6": "PageDown", "7": "Home", "8": "End",
	"11": "F1", "12": "F2", "13": "F3", "14": "F4",
	"15": "F5", "17": "F6", "18": "F7", "19": "F8",
	"20": "F9", "21": "F10", "23": "F11", "24": "F12",
}

// TerminalSource turns typed characters on a terminal into character-only
// notifications. The terminal reports no key releases and no modifier
// state, so modifier indicators stay dark with this source.
type TerminalSource struct {
	in io.Reader

	mu       sync.Mutex
	fd       int
	oldState *term.State
	stopped  bool
}

// NewTerminalSource reads from in. When in is a terminal it is switched to
// raw mode for the lifetime of the source.
func NewTerminalSource(in io.Reader) *TerminalSource {
	if in == nil {
		in = os.Stdin
	}
	return &TerminalSource{in: in, fd: -1}
}

// Start implements Source.
func (s *TerminalSource) Start(ctx context.Context) (<-chan ticker.RawEvent, error) {
	if f, ok := s.in.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return nil, fmt.Errorf("enable raw mode: %w", err)
			}
			s.mu.Lock()
			s.fd, s.oldState = fd, state
			s.mu.Unlock()
			slog.Debug("terminal set to raw mode")
		}
	}

	events := make(chan ticker.RawEvent, 64)
	go func() {
		defer close(events)
		r := bufio.NewReader(s.in)
		for {
			code, err := readKey(r)
			if err != nil {
				if err != io.EOF && !s.isStopped() {
					slog.Error("terminal read failed", "error", err)
				}
				return
			}
			if s.isStopped() {
				return
			}
			select {
			case events <- ticker.RawEvent{Kind: ticker.CharacterOnly, Code: code}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// readKey reads one rune. An escape sequence that is already buffered is
// consumed whole and returned as its key identifier; unknown sequences are
// dropped. A lone ESC is returned as is.
func readKey(r *bufio.Reader) (string, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return "", err
		}
		if c != 0x1b || r.Buffered() == 0 {
			return string(c), nil
		}
		seq, ok := peekSequence(r)
		if !ok {
			return string(c), nil
		}
		r.Discard(len(seq))
		if name, ok := sequenceKey(seq); ok {
			return name, nil
		}
		slog.Debug("dropping unknown escape sequence", "seq", fmt.Sprintf("%q", "\x1b"+seq))
	}
}

// peekSequence returns the buffered bytes following ESC that form one
// sequence: "O" plus one byte, or "[" with parameter bytes and a final byte.
func peekSequence(r *bufio.Reader) (string, bool) {
	buf, _ := r.Peek(r.Buffered())
	if len(buf) < 2 {
		return "", false
	}
	switch buf[0] {
	case 'O':
		return string(buf[:2]), true
	case '[':
		for i := 1; i < len(buf); i++ {
			b := buf[i]
			switch {
			case b >= 0x40 && b <= 0x7e:
				return string(buf[:i+1]), true
			case b < 0x20 || b > 0x3f:
				return "", false
			}
		}
	}
	return "", false
}

// sequenceKey names a sequence returned by peekSequence. Modifier
// parameters such as the ";5" in "[1;5A" are ignored.
func sequenceKey(seq string) (string, bool) {
	final := seq[len(seq)-1]
	if seq[0] == 'O' {
		name, ok := finalKeys[final]
		return name, ok
	}
	if final == '~' {
		num, _, _ := strings.Cut(seq[1:len(seq)-1], ";")
		name, ok := tildeKeys[num]
		return name, ok
	}
	name, ok := finalKeys[final]
	return name, ok
}

// Stop implements Source and restores the terminal mode.
func (s *TerminalSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.oldState == nil {
		return nil
	}
	err := term.Restore(s.fd, s.oldState)
	s.oldState = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (s *TerminalSource) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
