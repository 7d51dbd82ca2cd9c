package handlers

import (
	"testing"

	"github.com/adcraft/backend/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWSHub_RegisterUnregister(t *testing.T) {
	hub := NewWSHub("secret", nil, nil, zap.NewNop())
	id := uuid.New()
	a, b := &wsClient{}, &wsClient{}

	hub.register(id, a)
	hub.register(id, b)
	assert.Len(t, hub.clients[id], 2)

	hub.unregister(id, a)
	assert.Equal(t, []*wsClient{b}, hub.clients[id])

	hub.unregister(id, b)
	_, ok := hub.clients[id]
	assert.False(t, ok)
}

func TestWSHub_DispatchWithoutClients(t *testing.T) {
	hub := NewWSHub("secret", nil, nil, zap.NewNop())
	assert.NotPanics(t, func() {
		hub.dispatch(events.Event{Type: events.EventSessionExpired, SessionID: uuid.New()})
	})
}
