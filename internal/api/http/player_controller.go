package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/playlog/internal/api/http/converter"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/service"
)

type PlayerController struct {
	players service.PlayerInteractor
	resp    *Responder
}

func NewPlayerController(players service.PlayerInteractor, resp *Responder) *PlayerController {
	return &PlayerController{players: players, resp: resp}
}

func (c *PlayerController) CreatePlayer(ctx *gin.Context) {
	type request struct {
		Name    string `json:"name" binding:"required,notblank"`
		IsOwner bool   `json:"is_owner"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	player, err := c.players.CreatePlayer(ctx.Request.Context(), req.Name, req.IsOwner)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusCreated, "player", converter.PlayerToApi(player))
}

func (c *PlayerController) ListPlayers(ctx *gin.Context) {
	players, err := c.players.ListPlayers(ctx.Request.Context())
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.List(ctx, "players", len(players), converter.PlayersToApi(players))
}

func (c *PlayerController) GetPlayer(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid player id")
		return
	}

	player, err := c.players.GetPlayer(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "player", converter.PlayerToApi(player))
}

func (c *PlayerController) UpdatePlayer(ctx *gin.Context) {
	type request struct {
		Name    *string `json:"name" binding:"omitempty,notblank"`
		IsOwner *bool   `json:"is_owner"`
	}

	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid player id")
		return
	}

	var req request
	if err := bindPatch(ctx, &req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	player, err := c.players.UpdatePlayer(ctx.Request.Context(), id, domain.PlayerPatch{
		Name:    req.Name,
		IsOwner: req.IsOwner,
	})
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "player", converter.PlayerToApi(player))
}

func (c *PlayerController) DeletePlayer(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid player id")
		return
	}

	player, err := c.players.DeletePlayer(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Deleted(ctx, "player", "Player", converter.PlayerToApi(player))
}
