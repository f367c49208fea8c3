package http_catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/ampeli/wineroulette/internal/delivery/http/common"
	"github.com/ampeli/wineroulette/internal/model"
	usecase_catalog "github.com/ampeli/wineroulette/internal/usecase/catalog"
)

type Controller struct {
	uc *usecase_catalog.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_catalog.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog")
	{
		catalog.POST("/items", c.upload)
		catalog.GET("/items", c.list)
	}
}

type ItemDTO struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name" binding:"required"`
	Region   string   `json:"region" binding:"required"`
	Category string   `json:"category"`
	Rating   float64  `json:"rating"`
	Price    *float64 `json:"price"`
}

type UploadResponseDTO struct {
	ItemID string `json:"item_id"`
}

func (c *Controller) upload(ctx *gin.Context) {
	var req ItemDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	item := model.Item{
		Name:     req.Name,
		Region:   req.Region,
		Category: req.Category,
		Rating:   req.Rating,
		Price:    req.Price,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid item id format",
			})
			return
		}
		item.ID = id
	}

	itemID, err := c.uc.Upload(ctx, item)
	if err != nil {
		c.logger.Error("failed to upload item", slog.String("error", err.Error()))
		if errors.Is(err, usecase_catalog.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid input",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, UploadResponseDTO{
		ItemID: itemID.String(),
	})
}

type ListResponseDTO struct {
	Items []ItemDTO `json:"items"`
}

func (c *Controller) list(ctx *gin.Context) {
	region := ctx.Query("region")
	if region == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "region query parameter required",
		})
		return
	}

	items, err := c.uc.List(ctx, region)
	if err != nil {
		c.logger.Error("failed to list items", slog.String("region", region), slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	resp := ListResponseDTO{Items: make([]ItemDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, ItemDTO{
			ID:       item.ID.String(),
			Name:     item.Name,
			Region:   item.Region,
			Category: item.Category,
			Rating:   item.Rating,
			Price:    item.Price,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
