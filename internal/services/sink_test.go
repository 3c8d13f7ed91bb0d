package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jodavila/long-journey/internal/journal"
)

// chanConn delivers writes on a channel so tests can wait for the
// asynchronous fan-out.
type chanConn struct {
	writes chan journal.ViewState
	err    error
	closed bool
}

func newChanConn() *chanConn {
	return &chanConn{writes: make(chan journal.ViewState, 8)}
}

func (c *chanConn) WriteJSON(v interface{}) error {
	if c.err != nil {
		return c.err
	}
	c.writes <- v.(journal.ViewState)
	return nil
}

func (c *chanConn) Close() error {
	c.closed = true
	return nil
}

func waitForWrite(t *testing.T, c *chanConn) journal.ViewState {
	t.Helper()
	select {
	case state := <-c.writes:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for view state")
		return journal.ViewState{}
	}
}

func TestPublishFansOutToAllConnections(t *testing.T) {
	hub := NewViewHub()
	first := newChanConn()
	second := newChanConn()
	hub.Register(first)
	hub.Register(second)

	hub.Publish(journal.ViewState{TotalPoints: 15, StreakDays: 2})

	assert.Equal(t, 15, waitForWrite(t, first).TotalPoints)
	assert.Equal(t, 15, waitForWrite(t, second).TotalPoints)
}

func TestRegisterSendsLastSnapshot(t *testing.T) {
	hub := NewViewHub()
	hub.Publish(journal.ViewState{TotalPoints: 35})

	late := newChanConn()
	hub.Register(late)

	// Register writes synchronously, so the snapshot is already queued.
	require.Len(t, late.writes, 1)
	assert.Equal(t, 35, (<-late.writes).TotalPoints)
}

func TestRegisterWithoutSnapshotSendsNothing(t *testing.T) {
	hub := NewViewHub()
	conn := newChanConn()
	hub.Register(conn)

	assert.Empty(t, conn.writes)
}

func TestUnregisteredConnectionStopsReceiving(t *testing.T) {
	hub := NewViewHub()
	steady := newChanConn()
	leaving := newChanConn()
	hub.Register(steady)
	id := hub.Register(leaving)

	hub.Unregister(id)
	hub.Publish(journal.ViewState{TotalPoints: 10})

	assert.Equal(t, 10, waitForWrite(t, steady).TotalPoints)
	assert.Empty(t, leaving.writes)
}

func TestBrokenConnectionDoesNotBlockOthers(t *testing.T) {
	hub := NewViewHub()
	broken := newChanConn()
	broken.err = errors.New("connection reset")
	healthy := newChanConn()
	hub.Register(broken)
	hub.Register(healthy)

	hub.Publish(journal.ViewState{TotalPoints: 20})

	assert.Equal(t, 20, waitForWrite(t, healthy).TotalPoints)
}
