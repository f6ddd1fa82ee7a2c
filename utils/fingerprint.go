package utils

import (
	"bims/config"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrScannerUnavailable is returned when the device link is not open.
var ErrScannerUnavailable = errors.New("fingerprint scanner is not connected")

// ScannerState is the connection lifecycle of the device link.
type ScannerState int

const (
	ScannerDisconnected ScannerState = iota
	ScannerConnecting
	ScannerOpen
	ScannerClosing
)

func (s ScannerState) String() string {
	switch s {
	case ScannerConnecting:
		return "connecting"
	case ScannerOpen:
		return "open"
	case ScannerClosing:
		return "closing"
	default:
		return "disconnected"
	}
}

const (
	scannerBackoffMin = 1 * time.Second
	scannerBackoffMax = 30 * time.Second
)

// ScannerBridge maintains a persistent WebSocket to the external fingerprint
// scanner service. The protocol is owned by that service: commands are bare
// text frames ("identify", "capture"), replies are JSON status/result frames.
// Reconnects use bounded exponential backoff; one command is in flight at a
// time and each command is cancellable through its context.
type ScannerBridge struct {
	url string

	mu      sync.Mutex
	conn    *websocket.Conn
	state   ScannerState
	pending chan json.RawMessage

	cmdMu sync.Mutex // serializes commands on the shared socket
	done  chan struct{}
}

func NewScannerBridge(url string) *ScannerBridge {
	return &ScannerBridge{
		url:  url,
		done: make(chan struct{}),
	}
}

// Start launches the connection loop. Safe to call once.
func (b *ScannerBridge) Start() {
	go b.run()
}

// Stop closes the device link and stops reconnecting.
func (b *ScannerBridge) Stop() {
	b.mu.Lock()
	b.state = ScannerClosing
	conn := b.conn
	b.mu.Unlock()

	close(b.done)
	if conn != nil {
		conn.Close()
	}
}

// State reports the current lifecycle state.
func (b *ScannerBridge) State() ScannerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *ScannerBridge) setState(s ScannerState) {
	b.mu.Lock()
	if b.state != ScannerClosing {
		b.state = s
		config.Logger().WithField("state", s.String()).Info("fingerprint scanner state")
	}
	b.mu.Unlock()
}

func (b *ScannerBridge) run() {
	backoff := scannerBackoffMin

	for {
		select {
		case <-b.done:
			return
		default:
		}

		b.setState(ScannerConnecting)
		conn, _, err := websocket.DefaultDialer.Dial(b.url, nil)
		if err != nil {
			b.setState(ScannerDisconnected)
			select {
			case <-b.done:
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > scannerBackoffMax {
				backoff = scannerBackoffMax
			}
			continue
		}

		backoff = scannerBackoffMin
		b.mu.Lock()
		b.conn = conn
		b.mu.Unlock()
		b.setState(ScannerOpen)

		b.readLoop(conn)

		b.mu.Lock()
		b.conn = nil
		b.mu.Unlock()
		b.setState(ScannerDisconnected)
	}
}

// readLoop delivers incoming frames to the waiting command, if any. Frames
// arriving with no command outstanding (device-initiated status pushes) are
// logged and dropped. Returns when the socket errors out.
func (b *ScannerBridge) readLoop(conn *websocket.Conn) {
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return
		}

		b.mu.Lock()
		pending := b.pending
		b.mu.Unlock()

		if pending != nil {
			select {
			case pending <- json.RawMessage(frame):
			default:
			}
		} else {
			config.Logger().WithField("frame", string(frame)).Debug("unsolicited scanner frame")
		}
	}
}

// Command sends a bare string command and waits for the next JSON frame from
// the device. Returns ErrScannerUnavailable when the link is down, or the
// context error when the caller gives up first.
func (b *ScannerBridge) Command(ctx context.Context, command string) (json.RawMessage, error) {
	b.cmdMu.Lock()
	defer b.cmdMu.Unlock()

	b.mu.Lock()
	if b.state != ScannerOpen || b.conn == nil {
		b.mu.Unlock()
		return nil, ErrScannerUnavailable
	}
	conn := b.conn
	reply := make(chan json.RawMessage, 1)
	b.pending = reply
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.pending = nil
		b.mu.Unlock()
	}()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(command)); err != nil {
		return nil, ErrScannerUnavailable
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		return nil, ErrScannerUnavailable
	case frame := <-reply:
		return frame, nil
	}
}
