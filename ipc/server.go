package ipc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/wmconfig"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server is the IPC control plane: one goroutine accepts connections,
// each connection gets its own read loop, and each subscribe command
// spawns its own goroutine forwarding bus events until the client
// unsubscribes or disconnects (spec §4.5).
type Server struct {
	State    *commands.State
	Config   *wmconfig.Config
	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server

	// treeMu serializes command dispatch against query reads across
	// connections, giving the tree the single-writer/many-readers
	// discipline spec §5 assumes even though each connection has its
	// own goroutine: handleCmd takes the write lock, handleQuery takes
	// the read lock.
	treeMu sync.RWMutex
}

// NewServer constructs an IPC server around the given process state
// and configuration. Call [Server.Start] to begin accepting
// connections.
func NewServer(state *commands.State, cfg *wmconfig.Config) *Server {
	return &Server{
		State:  state,
		Config: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start binds the loopback TCP listener at the given port (spec §4.5
// always uses 127.0.0.1) and begins accepting connections in the
// background. It returns once the listener is bound.
func (s *Server) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleConnection)

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("ipc: listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.server = &http.Server{Handler: mux}

	slog.Info("ipc server started", "addr", addr)
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("ipc server stopped", "err", err)
		}
	}()
	return nil
}

// Stop closes the listener, ending the accept loop. Live connections
// are not forcibly closed.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	return s.server.Close()
}

// Addr returns the bound listener's address, for tests that start the
// server on an OS-assigned port.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("ipc: websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(v any) {
		data, err := json.Marshal(v)
		if err != nil {
			slog.Error("ipc: marshal response failed", "err", err)
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Error("ipc: write failed", "err", err)
		}
	}

	disconnected := make(chan struct{})
	defer close(disconnected)

	subs := newSubscriptionSet()
	defer subs.cancelAll()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		resp := s.process(string(msg), send, subs, disconnected)
		resp.ClientMessage = string(msg)
		send(resp)
	}
}

func (s *Server) process(message string, send func(any), subs *subscriptionSet, disconnected <-chan struct{}) ClientResponse {
	tokens := strings.Fields(message)
	if len(tokens) == 0 {
		return errorResponse(fmt.Errorf("ipc: empty message"))
	}

	switch tokens[0] {
	case "query":
		return s.handleQuery(tokens[1:])
	case "cmd":
		return s.handleCmd(tokens[1:])
	case "subscribe":
		return s.handleSubscribe(tokens[1:], send, subs, disconnected)
	case "unsubscribe":
		return s.handleUnsubscribe(tokens[1:], subs)
	default:
		return errorResponse(fmt.Errorf("ipc: unrecognized command %q", tokens[0]))
	}
}

func (s *Server) handleQuery(args []string) ClientResponse {
	if len(args) == 0 {
		return errorResponse(fmt.Errorf("ipc: query requires a subcommand"))
	}

	s.treeMu.RLock()
	defer s.treeMu.RUnlock()

	var data any
	switch args[0] {
	case "windows":
		data = queryWindows(s.State.Tree)
	case "workspaces":
		data = queryWorkspaces(s.State.Tree)
	case "monitors":
		data = queryMonitors(s.State.Tree)
	case "binding-modes":
		data = s.Config.BindingModes
	case "focused":
		data = queryFocused(s.State.Tree)
	default:
		return errorResponse(fmt.Errorf("ipc: unsupported query %q", args[0]))
	}
	return okResponse(data)
}

func (s *Server) handleCmd(args []string) ClientResponse {
	raw, ok := flagValue(args, "--id")
	if !ok {
		return errorResponse(fmt.Errorf("ipc: cmd requires --id <uuid>"))
	}
	subjectID, err := uuid.Parse(raw)
	if err != nil {
		return errorResponse(fmt.Errorf("ipc: invalid --id value %q: %w", raw, err))
	}

	rest := withoutFlag(args, "--id", raw)
	if len(rest) == 0 {
		return errorResponse(fmt.Errorf("ipc: cmd requires an action"))
	}

	s.treeMu.Lock()
	defer s.treeMu.Unlock()
	summary, err := dispatchCmd(s.State, s.Config, subjectID, rest[0], rest[1:])
	if err != nil {
		return errorResponse(err)
	}
	return okResponse(CommandData{SubjectContainerID: summary.SubjectContainerID})
}

// handleSubscribe starts a goroutine that forwards every bus event
// matching the requested kinds to the client as an
// EventSubscriptionMessage, until the connection's disconnected
// channel closes or the client unsubscribes (spec §4.4, §4.5).
func (s *Server) handleSubscribe(args []string, send func(any), subs *subscriptionSet, disconnected <-chan struct{}) ClientResponse {
	raw, ok := flagValue(args, "--events")
	if !ok {
		return errorResponse(fmt.Errorf("ipc: subscribe requires --events <list>"))
	}
	kinds, err := parseEventKinds(raw)
	if err != nil {
		return errorResponse(err)
	}

	events, unsubscribe := s.State.Events.Subscribe()
	id := uuid.New()
	done := make(chan struct{})
	subs.add(id, func() {
		unsubscribe()
		close(done)
	})

	go func() {
		defer subs.remove(id)
		for {
			select {
			case <-disconnected:
				return
			case <-done:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !kindMatches(kinds, ev.Kind) {
					continue
				}
				send(EventSubscriptionMessage{
					MessageType:    "event_subscription",
					SubscriptionID: id.String(),
					Data:           ev,
					Success:        true,
				})
			}
		}
	}()

	return okResponse(EventSubscriptionData{SubscriptionID: id.String()})
}

func (s *Server) handleUnsubscribe(args []string, subs *subscriptionSet) ClientResponse {
	raw, ok := flagValue(args, "--id")
	if !ok {
		return errorResponse(fmt.Errorf("ipc: unsubscribe requires --id <uuid>"))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return errorResponse(fmt.Errorf("ipc: invalid --id value %q: %w", raw, err))
	}
	if !subs.cancel(id) {
		return errorResponse(fmt.Errorf("ipc: unknown subscription %s", id))
	}
	return okResponse(nil)
}

func okResponse(data any) ClientResponse {
	return ClientResponse{MessageType: "client_response", Data: data, Success: true}
}

func errorResponse(err error) ClientResponse {
	return ClientResponse{MessageType: "client_response", Error: err.Error(), Success: false}
}

// withoutFlag removes a "--name value" pair from args.
func withoutFlag(args []string, name, value string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		if args[i] == name && i+1 < len(args) && args[i+1] == value {
			i++
			continue
		}
		out = append(out, args[i])
	}
	return out
}
