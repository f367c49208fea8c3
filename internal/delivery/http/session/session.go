package http_session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/ampeli/wineroulette/internal/delivery/http/common"
	ws_session "github.com/ampeli/wineroulette/internal/delivery/ws/session"
	"github.com/ampeli/wineroulette/internal/model"
	usecase_session "github.com/ampeli/wineroulette/internal/usecase/session"
)

type Controller struct {
	uc  *usecase_session.Usecase
	hub *ws_session.Hub

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_session.Usecase,
	hub *ws_session.Hub,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:     uc,
		hub:    hub,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", c.create)
		sessions.POST("/joins", c.join)
		sessions.GET("/:session_id", c.view)
	}
}

type FiltersDTO struct {
	PriceMin   *float64 `json:"price_min"`
	PriceMax   *float64 `json:"price_max"`
	RatingMin  *float64 `json:"rating_min"`
	Categories []string `json:"categories"`
}

func (dto FiltersDTO) toModel() model.Filters {
	return model.Filters{
		PriceMin:   dto.PriceMin,
		PriceMax:   dto.PriceMax,
		RatingMin:  dto.RatingMin,
		Categories: dto.Categories,
	}
}

type CreateRequestDTO struct {
	Region      string     `json:"region" binding:"required"`
	DisplayName string     `json:"display_name"`
	Filters     FiltersDTO `json:"filters"`
}

type CreateResponseDTO struct {
	SessionID string `json:"session_id"`
	JoinCode  string `json:"join_code"`
}

func (c *Controller) create(ctx *gin.Context) {
	hostID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}

	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	s, err := c.uc.Create(ctx, model.AuthContext{UserID: hostID}, req.Region, req.Filters.toModel(), req.DisplayName)
	if err != nil {
		c.logger.Error("failed to create session", slog.String("error", err.Error()))
		if errors.Is(err, usecase_session.ErrNoFreeCode) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		SessionID: s.ID.String(),
		JoinCode:  s.JoinCode,
	})
}

type JoinRequestDTO struct {
	JoinCode    string `json:"join_code" binding:"required,len=6,numeric"`
	DisplayName string `json:"display_name"`
}

type JoinResponseDTO struct {
	SessionID     string `json:"session_id"`
	AlreadyJoined bool   `json:"already_joined"`
}

func (c *Controller) join(ctx *gin.Context) {
	userID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	s, alreadyJoined, err := c.uc.Join(ctx, model.AuthContext{UserID: userID}, req.JoinCode, req.DisplayName)
	if err != nil {
		c.logger.Error("failed to join session", slog.String("join_code", req.JoinCode), slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_session.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_session.ErrSessionClosed):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "session already started",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	if !alreadyJoined {
		c.hub.NotifyLobbyUpdate(s.ID)
	}

	ctx.JSON(http.StatusOK, JoinResponseDTO{
		SessionID:     s.ID.String(),
		AlreadyJoined: alreadyJoined,
	})
}

type ParticipantDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type CandidateDTO struct {
	ItemID    string `json:"item_id"`
	Order     int    `json:"order"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	UserVote  *bool  `json:"user_vote,omitempty"`
}

type SessionViewDTO struct {
	SessionID    string           `json:"session_id"`
	HostID       string           `json:"host_id"`
	JoinCode     string           `json:"join_code"`
	Region       string           `json:"region"`
	Status       string           `json:"status"`
	WinnerItemID *string          `json:"winner_item_id,omitempty"`
	Participants []ParticipantDTO `json:"participants"`
	Candidates   []CandidateDTO   `json:"candidates"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (c *Controller) view(ctx *gin.Context) {
	userID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid session id format",
		})
		return
	}

	view, err := c.uc.View(ctx, model.AuthContext{UserID: userID}, sessionID)
	if err != nil {
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to load session view", slog.String("session_id", sessionID.String()), slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dto := SessionViewDTO{
		SessionID:    view.Session.ID.String(),
		HostID:       view.Session.HostID.String(),
		JoinCode:     view.Session.JoinCode,
		Region:       view.Session.Region,
		Status:       view.Session.Status,
		Participants: make([]ParticipantDTO, 0, len(view.Participants)),
		Candidates:   make([]CandidateDTO, 0, len(view.Candidates)),
		CreatedAt:    view.Session.CreatedAt,
		UpdatedAt:    view.Session.UpdatedAt,
	}
	if view.Session.WinnerItemID != nil {
		winner := view.Session.WinnerItemID.String()
		dto.WinnerItemID = &winner
	}
	for _, p := range view.Participants {
		dto.Participants = append(dto.Participants, ParticipantDTO{
			ID:          p.ID.String(),
			DisplayName: p.DisplayName,
		})
	}
	for _, t := range view.Candidates {
		dto.Candidates = append(dto.Candidates, CandidateDTO{
			ItemID:    t.ItemID.String(),
			Order:     t.Ord,
			Upvotes:   t.Upvotes,
			Downvotes: t.Downvotes,
			UserVote:  t.UserVote,
		})
	}

	ctx.JSON(http.StatusOK, dto)
}
