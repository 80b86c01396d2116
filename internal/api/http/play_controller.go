package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/api/http/converter"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/service"
)

type PlayController struct {
	plays service.PlayInteractor
	resp  *Responder
}

func NewPlayController(plays service.PlayInteractor, resp *Responder) *PlayController {
	return &PlayController{plays: plays, resp: resp}
}

type playRequest struct {
	GameID uuid.UUID `json:"game_id" binding:"required"`
}

func (c *PlayController) CreatePlay(ctx *gin.Context) {
	var req playRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	play, err := c.plays.CreatePlay(ctx.Request.Context(), req.GameID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusCreated, "play", converter.PlayToApi(play))
}

func (c *PlayController) ListPlays(ctx *gin.Context) {
	plays, err := c.plays.ListPlays(ctx.Request.Context())
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.List(ctx, "plays", len(plays), converter.PlaysToApi(plays))
}

func (c *PlayController) GetPlay(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid play id")
		return
	}

	play, err := c.plays.GetPlay(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "play", converter.PlayToApi(play))
}

// UpdatePlay is a full update: game_id is required.
func (c *PlayController) UpdatePlay(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid play id")
		return
	}

	var req playRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	play, err := c.plays.UpdatePlay(ctx.Request.Context(), id, domain.PlayUpdate{GameID: req.GameID})
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "play", converter.PlayToApi(play))
}

func (c *PlayController) DeletePlay(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid play id")
		return
	}

	play, err := c.plays.DeletePlay(ctx.Request.Context(), id)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Deleted(ctx, "play", "Play", converter.PlayToApi(play))
}
