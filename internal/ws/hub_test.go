// internal/ws/hub_test.go
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bingo-engine/internal/domain"
)

func TestHubBroadcastsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration is asynchronous; publish until the subscriber sees an event.
	event := domain.NewRoundEvent(domain.EventNumberCalled, 5, map[string]int{"number": 17})
	deadline := time.Now().Add(2 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	received := make(chan []byte, 1)
	go func() {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			received <- msg
		}
	}()

	var msg []byte
	for msg == nil && time.Now().Before(deadline) {
		hub.Publish(event)
		select {
		case msg = <-received:
		case <-time.After(50 * time.Millisecond):
		}
	}
	require.NotNil(t, msg, "no event received")

	var got domain.RoundEvent
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, domain.EventNumberCalled, got.Type)
	assert.Equal(t, int64(5), got.RoundID)
	assert.Equal(t, event.ID, got.ID)
}

func TestPublishWithoutRunnerDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer+10; i++ {
			hub.Publish(domain.NewRoundEvent(domain.EventRoundPaused, 1, nil))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
