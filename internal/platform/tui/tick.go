// Package tui provides the Bubble Tea integration for the matcher platform.
// It renders engine snapshots, maps keys to engine operations and serves
// sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-matcher/internal/broadcast"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

// SnapshotMsg carries a snapshot published by the engine.
type SnapshotMsg matcher.Snapshot

// SessionClosedMsg is sent when the engine closes the subscription.
type SessionClosedMsg struct{}

// listenCmd waits for the next published snapshot.
func listenCmd(ch *broadcast.Channel[matcher.Snapshot]) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-ch.C():
			return SnapshotMsg(s)
		case <-ch.Done():
			return SessionClosedMsg{}
		}
	}
}

// BreakTickMsg counts down a bonus break.
type BreakTickMsg struct {
	ID int
}

func breakTickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return BreakTickMsg{ID: id}
	})
}
