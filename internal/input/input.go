// Package input provides the per-tick input snapshot and a terminal input reader.
package input

import (
	"bufio"
	"time"
)

// Snapshot is the input state read once at the top of a tick.
// Movement flags are level-triggered; Shoot is edge-triggered (pressed this tick).
type Snapshot struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Shoot bool
	Quit  bool
}

// keyHoldDuration is how long a movement key is considered "held" after its last press.
// Terminals report repeats but no key-up, so holding is inferred from recency.
const keyHoldDuration = 60 * time.Millisecond

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Unfinished escape sequence carried to the next poll
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking) and returns the snapshot.
// Shoot is set only when a space byte arrived since the previous poll; a closed input
// stream is reported as Quit.
func (s *Stream) Poll() Snapshot {
	now := s.now()
	buf := s.pending
	s.pending = nil
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var snap Snapshot
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>. Bytes may arrive split across polls.
		if b == '\x1b' {
			if i+1 >= len(buf) || (buf[i+1] == '[' && i+2 >= len(buf)) {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if buf[i+1] != '[' {
				continue
			}
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			snap.Quit = true
		case ' ':
			snap.Shoot = true
		default:
			applyByteToState(&s.state, b, now)
		}
	}

	snap.Left = now.Sub(s.state.left) < keyHoldDuration
	snap.Right = now.Sub(s.state.right) < keyHoldDuration
	snap.Up = now.Sub(s.state.up) < keyHoldDuration
	snap.Down = now.Sub(s.state.down) < keyHoldDuration
	if closed {
		snap.Quit = true
	}

	return snap
}

// applyByteToState updates the movement key timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	}
}
