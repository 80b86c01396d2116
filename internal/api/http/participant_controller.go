package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/api/http/converter"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/service"
)

type ParticipantController struct {
	participants service.ParticipantInteractor
	resp         *Responder
}

func NewParticipantController(participants service.ParticipantInteractor, resp *Responder) *ParticipantController {
	return &ParticipantController{participants: participants, resp: resp}
}

func (c *ParticipantController) AddParticipant(ctx *gin.Context) {
	type request struct {
		PlayID   uuid.UUID `json:"play_id" binding:"required"`
		PlayerID uuid.UUID `json:"player_id" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	participant, err := c.participants.AddParticipant(ctx.Request.Context(), req.PlayID, req.PlayerID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusCreated, "play_participant", converter.ParticipantToApi(participant))
}

func (c *ParticipantController) ListParticipants(ctx *gin.Context) {
	participants, err := c.participants.ListParticipants(ctx.Request.Context())
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.List(ctx, "play_participants", len(participants), converter.ParticipantsToApi(participants))
}

func (c *ParticipantController) ListPlayParticipants(ctx *gin.Context) {
	playID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid play id")
		return
	}

	participants, err := c.participants.ListPlayParticipants(ctx.Request.Context(), playID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.List(ctx, "play_participants", len(participants), converter.ParticipantsToApi(participants))
}

func (c *ParticipantController) GetParticipant(ctx *gin.Context) {
	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}

	participant, err := c.participants.GetParticipant(ctx.Request.Context(), key)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "play_participant", converter.ParticipantToApi(participant))
}

func (c *ParticipantController) UpdateParticipant(ctx *gin.Context) {
	type request struct {
		PlayID   *uuid.UUID `json:"play_id"`
		PlayerID *uuid.UUID `json:"player_id"`
	}

	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}

	var req request
	if err := bindPatch(ctx, &req); err != nil {
		c.resp.BadRequest(ctx, bindingMessage(err))
		return
	}

	participant, err := c.participants.UpdateParticipant(ctx.Request.Context(), key, domain.ParticipantPatch{
		PlayID:   req.PlayID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Success(ctx, http.StatusOK, "play_participant", converter.ParticipantToApi(participant))
}

func (c *ParticipantController) RemoveParticipant(ctx *gin.Context) {
	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}

	participant, err := c.participants.RemoveParticipant(ctx.Request.Context(), key)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}

	c.resp.Deleted(ctx, "play_participant", "Play participant", converter.ParticipantToApi(participant))
}

func (c *ParticipantController) parseKey(ctx *gin.Context) (domain.ParticipantKey, bool) {
	playID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid play id")
		return domain.ParticipantKey{}, false
	}
	playerID, ok := parseUUIDParam(ctx, "player_id")
	if !ok {
		c.resp.BadRequest(ctx, "invalid player id")
		return domain.ParticipantKey{}, false
	}
	return domain.ParticipantKey{PlayID: playID, PlayerID: playerID}, true
}
