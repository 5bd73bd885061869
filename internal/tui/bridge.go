// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/student-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge implements [service.LoadingIndicator], [service.Notifier] and
// [service.Navigator] for the terminal UI. Calls made while no program is
// attached are dropped, and Notify returns [ErrUIClosed].
type Bridge struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	closed chan struct{}
}

// NewBridge returns a detached bridge.
func NewBridge() *Bridge {
	closed := make(chan struct{})
	close(closed)
	return &Bridge{closed: closed}
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
	b.closed = make(chan struct{})
}

// detach releases every Notify that is still waiting.
func (b *Bridge) detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.send == nil {
		return
	}
	b.send = nil
	close(b.closed)
}

func (b *Bridge) current() (func(tea.Msg), <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.send, b.closed
}

func (b *Bridge) post(msg tea.Msg) {
	if send, _ := b.current(); send != nil {
		send(msg)
	}
}

// Load shows the loading spinner.
func (b *Bridge) Load() { b.post(loadingMsg{on: true}) }

// Stop hides the loading spinner.
func (b *Bridge) Stop() { b.post(loadingMsg{on: false}) }

// Notify shows n as an overlay and blocks until the administrator dismisses
// it, ctx is done or the program exits.
func (b *Bridge) Notify(ctx context.Context, n models.Notification) error {
	send, closed := b.current()
	if send == nil {
		return ErrUIClosed
	}

	done := make(chan struct{})
	send(notifyMsg{notification: n, done: done})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-closed:
		return ErrUIClosed
	}
}

// NavigateTo switches the UI to the screen of route.
func (b *Bridge) NavigateTo(route ...string) {
	b.post(navigateMsg{route: append([]string(nil), route...)})
}

// Back returns to the previous screen.
func (b *Bridge) Back() { b.post(backMsg{}) }
