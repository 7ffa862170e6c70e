// This file is part of Stackscope.
//
// Stackscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stackscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stackscope.  If not, see <https://www.gnu.org/licenses/>.

package wsclient

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/logger"
)

// DefaultAddress of the virtual machine.
const DefaultAddress = "ws://localhost:9002"

const handshakeTimeout = 5 * time.Second

// Update is sent by the Manager for every change of state and for every
// message received.
type Update struct {
	// IsState is true if the update is a change of connection state. If it is
	// false then Payload contains a message.
	IsState bool
	State   connection.State
	Payload []byte
}

type command int

const (
	cmdReconnect command = iota
	cmdDisconnect
	cmdAutoReconnect
	cmdAddress
)

type request struct {
	cmd     command
	auto    bool
	address string
}

// link is a single established connection and the goroutine reading from it.
type link struct {
	conn *websocket.Conn

	// closed to tell the reader to stop forwarding messages
	stop chan struct{}

	// the reader sends exactly one value before ending. buffered so that the
	// reader never blocks on it
	done chan error
}

// Manager maintains the connection to the virtual machine.
type Manager struct {
	dialer     *websocket.Dialer
	address    string
	auto       bool
	retryDelay time.Duration

	updates  chan Update
	requests chan request
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(address string, autoReconnect bool, retryDelay time.Duration) *Manager {
	return &Manager{
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		address:    address,
		auto:       autoReconnect,
		retryDelay: retryDelay,
		updates:    make(chan Update),
		requests:   make(chan request, 16),
	}
}

// Updates returns the channel on which state changes and messages are sent.
// The channel is closed when Run() returns.
func (m *Manager) Updates() <-chan Update {
	return m.updates
}

// Reconnect closes any existing connection and connects again.
func (m *Manager) Reconnect() {
	m.requests <- request{cmd: cmdReconnect}
}

// Disconnect closes the connection. There will be no automatic reconnection
// until Reconnect() is called.
func (m *Manager) Disconnect() {
	m.requests <- request{cmd: cmdDisconnect}
}

// SetAutoReconnect changes whether a lost connection should be reconnected
// automatically.
func (m *Manager) SetAutoReconnect(auto bool) {
	m.requests <- request{cmd: cmdAutoReconnect, auto: auto}
}

// SetAddress changes the address used by the next connection attempt. The
// current connection is not affected.
func (m *Manager) SetAddress(address string) {
	m.requests <- request{cmd: cmdAddress, address: address}
}

// Run the connection manager until the context is cancelled.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.updates)

	var lnk *link
	var retry *time.Timer
	var retryC <-chan time.Time

	state := connection.Disconnected
	deliberate := false

	setState := func(s connection.State) {
		state = s
		select {
		case m.updates <- Update{IsState: true, State: s}:
		case <-ctx.Done():
		}
	}

	stopRetry := func() {
		if retry != nil {
			retry.Stop()
		}
		retry = nil
		retryC = nil
	}

	scheduleRetry := func() {
		if connection.NextAction(state, m.auto, deliberate) != connection.ActionConnect {
			return
		}
		stopRetry()
		retry = time.NewTimer(m.retryDelay)
		retryC = retry.C
	}

	closeLink := func() {
		if lnk == nil {
			return
		}
		close(lnk.stop)
		lnk.conn.Close()
		<-lnk.done
		lnk = nil
	}

	connect := func() {
		deliberate = false
		setState(connection.Connecting)
		if ctx.Err() != nil {
			return
		}

		conn, _, err := m.dialer.DialContext(ctx, m.address, nil)
		if err != nil {
			logger.Logf(logger.Allow, "wsclient", "cannot connect to %s: %v", m.address, err)
			setState(connection.Disconnected)
			scheduleRetry()
			return
		}

		lnk = &link{
			conn: conn,
			stop: make(chan struct{}),
			done: make(chan error, 1),
		}
		setState(connection.Connected)
		go m.read(lnk)
	}

	if connection.NextAction(state, m.auto, deliberate) == connection.ActionConnect {
		connect()
	}

	for {
		var done <-chan error
		if lnk != nil {
			done = lnk.done
		}

		select {
		case <-ctx.Done():
			stopRetry()
			closeLink()
			return

		case err := <-done:
			lnk.conn.Close()
			lnk = nil
			if err != nil {
				logger.Logf(logger.Allow, "wsclient", "connection to %s lost: %v", m.address, err)
			}
			setState(connection.Disconnected)
			scheduleRetry()

		case <-retryC:
			stopRetry()
			if state == connection.Disconnected {
				connect()
			}

		case req := <-m.requests:
			switch req.cmd {
			case cmdReconnect:
				stopRetry()
				if lnk != nil {
					closeLink()
					setState(connection.Disconnected)
				}
				connect()

			case cmdDisconnect:
				stopRetry()
				deliberate = true
				if lnk != nil {
					closeLink()
					setState(connection.Disconnected)
				}

			case cmdAutoReconnect:
				m.auto = req.auto
				if m.auto {
					scheduleRetry()
				} else {
					stopRetry()
				}

			case cmdAddress:
				m.address = req.address
			}
		}
	}
}

// read messages from the link until the connection fails or the link is
// stopped.
func (m *Manager) read(lnk *link) {
	for {
		_, p, err := lnk.conn.ReadMessage()
		if err != nil {
			select {
			case <-lnk.stop:
				// the error is the result of a deliberate close
				lnk.done <- nil
			default:
				lnk.done <- err
			}
			return
		}

		select {
		case m.updates <- Update{Payload: p}:
		case <-lnk.stop:
			lnk.done <- nil
			return
		}
	}
}
