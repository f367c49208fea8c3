package ws_session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
)

const (
	EventLobbyUpdate    = "LOBBY_UPDATE"
	EventVotingStarted  = "VOTING_STARTED"
	EventVotingFinished = "VOTING_FINISHED"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type sessionEvent struct {
	sessionID uuid.UUID
	event     Event
}

// ParticipantSource feeds lobby updates. The REST view stays the
// authoritative read surface; the hub only nudges clients to refetch.
type ParticipantSource interface {
	Participants(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error)
}

type Hub struct {
	participants ParticipantSource
	logger       *slog.Logger
	clients      map[*Client]bool
	sessions     map[uuid.UUID]map[*Client]bool
	register     chan *Client
	unregister   chan *Client
	broadcast    chan sessionEvent
	mu           sync.RWMutex
}

func NewHub(participants ParticipantSource) *Hub {
	return &Hub{
		participants: participants,
		logger:       slog.Default(),
		clients:      make(map[*Client]bool),
		sessions:     make(map[uuid.UUID]map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		broadcast:    make(chan sessionEvent),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case se := <-h.broadcast:
			h.broadcastToSession(se.sessionID, se.event)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.sessions[client.sessionID]; !exists {
		h.sessions[client.sessionID] = make(map[*Client]bool)
	}
	h.sessions[client.sessionID][client] = true

	h.logger.Info("client registered",
		"user_id", client.userID,
		"session_id", client.sessionID)

	go h.broadcastLobbyUpdate(client.sessionID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if sessionClients, exists := h.sessions[client.sessionID]; exists {
			delete(sessionClients, client)
			if len(sessionClients) == 0 {
				delete(h.sessions, client.sessionID)
			}
		}
	}

	h.logger.Info("client unregistered",
		"user_id", client.userID,
		"session_id", client.sessionID)
}

func (h *Hub) broadcastLobbyUpdate(sessionID uuid.UUID) {
	participants, err := h.participants.Participants(context.Background(), sessionID)
	if err != nil {
		h.logger.Error("failed to get participants", "error", err, "session_id", sessionID)
		return
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.DisplayName)
	}

	h.broadcastToSession(sessionID, Event{
		Type: EventLobbyUpdate,
		Payload: map[string]interface{}{
			"participants_count": len(participants),
			"participants":       names,
		},
	})
}

// broadcastToSession only reads the client maps; eviction of slow
// consumers goes through the unregister path so a client's send channel
// is closed exactly once, no matter how it leaves the hub.
func (h *Hub) broadcastToSession(sessionID uuid.UUID, event Event) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.sessions[sessionID]))
	for client := range h.sessions[sessionID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.send <- event:
		default:
			// Slow consumer, its buffer is full. Hand it to Run
			// asynchronously: this may execute on Run itself.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) NotifyLobbyUpdate(sessionID uuid.UUID) {
	go h.broadcastLobbyUpdate(sessionID)
}

func (h *Hub) NotifyVotingStarted(sessionID uuid.UUID, initiatedBy string) {
	h.broadcast <- sessionEvent{
		sessionID: sessionID,
		event: Event{
			Type: EventVotingStarted,
			Payload: map[string]interface{}{
				"session_id":   sessionID.String(),
				"initiated_by": initiatedBy,
			},
		},
	}
}

func (h *Hub) NotifyVotingFinished(sessionID uuid.UUID) {
	h.broadcast <- sessionEvent{
		sessionID: sessionID,
		event: Event{
			Type: EventVotingFinished,
			Payload: map[string]interface{}{
				"session_id": sessionID.String(),
				"message":    "voting finished",
				"timestamp":  time.Now().Unix(),
			},
		},
	}

	h.logger.Info("voting finished notification sent",
		"session_id", sessionID)
}
