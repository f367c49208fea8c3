package http_voting

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/ampeli/wineroulette/internal/delivery/http/common"
	ws_session "github.com/ampeli/wineroulette/internal/delivery/ws/session"
	"github.com/ampeli/wineroulette/internal/model"
	usecase_spin "github.com/ampeli/wineroulette/internal/usecase/spin"
	usecase_vote "github.com/ampeli/wineroulette/internal/usecase/vote"
)

type Controller struct {
	spinUC *usecase_spin.Usecase
	voteUC *usecase_vote.Usecase

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
	spinUC *usecase_spin.Usecase,
	voteUC *usecase_vote.Usecase,
	hub *ws_session.Hub,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		spinUC: spinUC,
		voteUC: voteUC,
		hub:    hub,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	session := router.Group("/sessions/:session_id")
	{
		session.POST("/spin", c.spin)
		session.POST("/votes", c.vote)
		session.POST("/finalize", c.finalize)
	}
}

func (c *Controller) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid session id format",
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

type SpinRequestDTO struct {
	Count int `json:"count"`
}

type SpinResponseDTO struct {
	CandidateCount int `json:"candidate_count"`
}

func (c *Controller) spin(ctx *gin.Context) {
	callerID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	// Body is optional, an empty count falls back to the default draw.
	var req SpinRequestDTO
	_ = ctx.ShouldBindJSON(&req)

	count, err := c.spinUC.Spin(ctx, model.AuthContext{UserID: callerID}, sessionID, req.Count)
	if err != nil {
		c.logger.Error("failed to spin", slog.String("session_id", sessionID.String()), slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_spin.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_spin.ErrNotHost):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "only the host may spin",
			})
		case errors.Is(err, usecase_spin.ErrInvalidState):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "voting already started",
			})
		case errors.Is(err, usecase_spin.ErrNoEligibleItems):
			ctx.JSON(http.StatusUnprocessableEntity, http_common.ErrorResponse{
				Message: "no items match the session filters",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	c.hub.NotifyVotingStarted(sessionID, callerID.String())

	ctx.JSON(http.StatusOK, SpinResponseDTO{
		CandidateCount: count,
	})
}

type VoteRequestDTO struct {
	ItemID string `json:"item_id" binding:"required"`
	Upvote *bool  `json:"upvote" binding:"required"`
}

type VoteResponseDTO struct {
	Completed bool `json:"completed"`
}

func (c *Controller) vote(ctx *gin.Context) {
	callerID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid item id format",
		})
		return
	}

	completed, err := c.voteUC.Cast(ctx, model.AuthContext{UserID: callerID}, sessionID, itemID, *req.Upvote)
	if err != nil {
		c.logger.Error("failed to cast vote",
			slog.String("session_id", sessionID.String()),
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_vote.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_vote.ErrUnknownCandidate):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "item is not a candidate of this session",
			})
		case errors.Is(err, usecase_vote.ErrNotParticipant):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "user is not a participant of this session",
			})
		case errors.Is(err, usecase_vote.ErrInvalidState):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "session is not voting",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	if completed {
		c.hub.NotifyVotingFinished(sessionID)
	}

	ctx.JSON(http.StatusAccepted, VoteResponseDTO{
		Completed: completed,
	})
}

type FinalizeResponseDTO struct {
	WinnerItemID string `json:"winner_item_id"`
}

func (c *Controller) finalize(ctx *gin.Context) {
	callerID, ok := http_common.CallerID(ctx)
	if !ok {
		return
	}
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	winnerID, err := c.voteUC.Finalize(ctx, model.AuthContext{UserID: callerID}, sessionID)
	if err != nil {
		c.logger.Error("failed to finalize", slog.String("session_id", sessionID.String()), slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_vote.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_vote.ErrNotHost):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "only the host may finalize",
			})
		case errors.Is(err, usecase_vote.ErrInvalidState):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "voting has not started",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	c.hub.NotifyVotingFinished(sessionID)

	ctx.JSON(http.StatusOK, FinalizeResponseDTO{
		WinnerItemID: winnerID.String(),
	})
}
