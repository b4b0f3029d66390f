// Package ipc is the local control-plane server external clients use
// to query and mutate window manager state (spec §4.5, §6). It is
// grounded directly on original_source/packages/wm/src/ipc_server.rs
// for its overall shape — an accept loop spawning one task per
// connection, a response channel merged with incoming frames, one
// subscription goroutine per subscribe command, a tagged JSON
// response envelope — adapted from tokio-tungstenite to
// github.com/gorilla/websocket, already a direct teacher dependency
// (base/websocket).
package ipc

import "cogentcore.org/wm/containers"

// DefaultPort is the loopback TCP port the server listens on,
// matching the original implementation's DEFAULT_IPC_PORT.
const DefaultPort = 6123

// ClientResponse is sent once in reply to every client message,
// whether it was a query, a cmd, a subscribe, or an unsubscribe
// (spec §6).
type ClientResponse struct {
	MessageType   string `json:"messageType"`
	ClientMessage string `json:"clientMessage"`
	Data          any    `json:"data,omitempty"`
	Error         string `json:"error,omitempty"`
	Success       bool   `json:"success"`
}

// EventSubscriptionMessage is pushed to a client for every event
// matching one of its active subscriptions, until it unsubscribes or
// disconnects (spec §4.4, §6).
type EventSubscriptionMessage struct {
	MessageType    string `json:"messageType"`
	SubscriptionID string `json:"subscriptionId"`
	Data           any    `json:"data,omitempty"`
	Error          string `json:"error,omitempty"`
	Success        bool   `json:"success"`
}

// CommandData is a cmd response's payload: the id of the container
// the command acted on (spec §6).
type CommandData struct {
	SubjectContainerID containers.ID `json:"subjectContainerId"`
}

// EventSubscriptionData is a subscribe response's payload.
type EventSubscriptionData struct {
	SubscriptionID string `json:"subscriptionId"`
}
