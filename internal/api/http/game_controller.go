package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/playlog/internal/api/http/converter"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/service"
)

type GameController struct {
	games service.GameInteractor
	resp  *Responder
}

func NewGameController(games service.GameInteractor, resp *Responder) *GameController {
	return &GameController{games: games, resp: resp}
}

func (c *GameController) CreateGame(ctx *gin.Context) {
	type request struct {
		Name        string `json:"name" binding:"required,notblank"`
		CreatorName string `json:"creator_name" binding:"required,notblank"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	game, err := c.games.CreateGame(ctx.Request.Context(), req.Name, req.CreatorName)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusCreated, "game", converter.GameToApi(game))
}

func (c *GameController) ListGames(ctx *gin.Context) {
	games, err := c.games.ListGames(ctx.Request.Context())
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.List(ctx, "games", len(games), converter.GamesToApi(games))
}

func (c *GameController) GetGame(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid game id")
		return
	}

	game, err := c.games.GetGame(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "game", converter.GameToApi(game))
}

func (c *GameController) UpdateGame(ctx *gin.Context) {
	type request struct {
		Name        *string `json:"name" binding:"omitempty,notblank"`
		CreatorName *string `json:"creator_name" binding:"omitempty,notblank"`
	}

	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid game id")
		return
	}

	var req request
	if err := bindPatch(ctx, &req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	game, err := c.games.UpdateGame(ctx.Request.Context(), id, domain.GamePatch{
		Name:        req.Name,
		CreatorName: req.CreatorName,
	})
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "game", converter.GameToApi(game))
}

func (c *GameController) DeleteGame(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid game id")
		return
	}

	game, err := c.games.DeleteGame(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Deleted(ctx, "game", "Game", converter.GameToApi(game))
}
