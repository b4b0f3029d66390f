package ipc_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/ipc"
	"cogentcore.org/wm/platform"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*ipc.Server, *commands.State, *containers.Workspace) {
	t.Helper()
	fake := platform.NewFake([]platform.MonitorInfo{{Index: 0, Rect: geom.NewRect(0, 0, 1920, 1080), DPI: 96}})
	state := commands.NewState(wmevent.NewBus(), fake)

	mon := containers.NewMonitor(geom.NewRect(0, 0, 1920, 1080), 0, 96)
	require.NoError(t, state.Tree.Attach(mon, state.Tree.Root(), nil))
	ws := containers.NewWorkspace("main", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, state.Tree.Attach(ws, mon, nil))

	cfg := wmconfig.Default()
	srv := ipc.NewServer(state, &cfg)
	require.NoError(t, srv.Start(0))
	t.Cleanup(func() { srv.Stop() })
	return srv, state, ws
}

func dial(t *testing.T, srv *ipc.Server) *websocket.Conn {
	t.Helper()
	url := fmt.Sprintf("ws://%s/", srv.Addr().String())
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) ipc.ClientResponse {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var resp ipc.ClientResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func TestQueryWorkspacesReturnsAttachedWorkspace(t *testing.T) {
	srv, _, ws := newTestServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("query workspaces")))
	resp := readResponse(t, conn)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var dtos []containers.DTO
	require.NoError(t, json.Unmarshal(raw, &dtos))
	require.Len(t, dtos, 1)
	require.Equal(t, ws.ID(), dtos[0].ID)
}

func TestCmdFocusMovesFocusAndReturnsSubject(t *testing.T) {
	srv, state, ws := newTestServer(t)
	conn := dial(t, srv)

	cfg := wmconfig.Default()
	win := containers.NewTilingWindow(1, 0)
	_, err := commands.AttachContainer(state, &cfg, win, ws, nil)
	require.NoError(t, err)

	msg := fmt.Sprintf("cmd --id %s focus", win.ID())
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	resp := readResponse(t, conn)
	require.True(t, resp.Success)

	focused, ok := state.Tree.FocusedContainer()
	require.True(t, ok)
	require.Equal(t, win.ID(), focused.AsBase().ID())
}

func TestUnknownCommandIsRejected(t *testing.T) {
	srv, _, _ := newTestServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("bogus")))
	resp := readResponse(t, conn)
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)
}

func TestSubscribeReceivesMatchingEventAndUnsubscribeStopsIt(t *testing.T) {
	srv, state, ws := newTestServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("subscribe --events focus_changed")))
	resp := readResponse(t, conn)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var subData ipc.EventSubscriptionData
	require.NoError(t, json.Unmarshal(raw, &subData))
	require.NotEmpty(t, subData.SubscriptionID)

	cfg := wmconfig.Default()
	// other is attached first, so it heads the workspace's focus order
	// and focusing win changes the resolved focused leaf.
	other := containers.NewTilingWindow(6, 0)
	_, err = commands.AttachContainer(state, &cfg, other, ws, nil)
	require.NoError(t, err)
	win := containers.NewTilingWindow(7, 0)
	_, err = commands.AttachContainer(state, &cfg, win, ws, nil)
	require.NoError(t, err)
	_, err = commands.SetFocusedDescendant(state, &cfg, win.ID())
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var evMsg ipc.EventSubscriptionMessage
	require.NoError(t, json.Unmarshal(data, &evMsg))
	require.Equal(t, "event_subscription", evMsg.MessageType)
	require.Equal(t, subData.SubscriptionID, evMsg.SubscriptionID)

	unsubMsg := fmt.Sprintf("unsubscribe --id %s", subData.SubscriptionID)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(unsubMsg)))
	unsubResp := readResponse(t, conn)
	require.True(t, unsubResp.Success)
}
