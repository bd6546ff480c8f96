package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the handler with the identity taken from the uid query parameter
func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		if uid, err := strconv.ParseInt(c.Query("uid"), 10, 64); err == nil {
			appauth.SetIdentity(c, appauth.Identity{UserID: uid, Email: "u@test.com"})
		}
		c.Next()
	}, NewHandler(hub, zerolog.Nop()).HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) (*gorilla.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	return gorilla.DefaultDialer.Dial(url, nil)
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func TestHub_DeliversToUser(t *testing.T) {
	hub := startHub(t)
	srv := newTestServer(t, hub)

	conn, _, err := dial(t, srv, "?uid=7")
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount(7) == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(8, "message.new", map[string]string{"content": "not for you"})
	hub.Publish(7, "referral.status", map[string]string{"status": "Accepted"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "referral.status", event.Type)
	assert.Equal(t, "Accepted", event.Payload["status"])
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub := startHub(t)
	srv := newTestServer(t, hub)

	conn, _, err := dial(t, srv, "?uid=3")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount(3) == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount(3) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHandleConnection_RequiresIdentity(t *testing.T) {
	hub := startHub(t)
	srv := newTestServer(t, hub)

	_, resp, err := dial(t, srv, "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := startHub(t)
	srv := newTestServer(t, hub)

	conn, _, err := dial(t, srv, "?uid=5")
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount(5) == 1 }, time.Second, 10*time.Millisecond)

	hub.Stop()
	hub.Stop()

	assert.Eventually(t, func() bool { return hub.ClientCount(5) == 0 }, time.Second, 10*time.Millisecond)
	assert.NotPanics(t, func() { hub.Publish(5, "message.new", nil) })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "connection is closed by the server")
}

func TestPublish_DropsWhenQueueFull(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	for i := 0; i < eventBuffer+10; i++ {
		hub.Publish(1, "message.new", i)
	}
	assert.Len(t, hub.events, eventBuffer)
}
