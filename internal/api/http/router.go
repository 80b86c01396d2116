package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Controllers groups the handlers mounted under /api. Nil entries are skipped.
type Controllers struct {
	Games        *GameController
	Players      *PlayerController
	Plays        *PlayController
	Participants *ParticipantController
}

// PingFunc reports whether the store is reachable.
type PingFunc func(ctx context.Context) error

func SetupRouter(log *slog.Logger, allowedOrigins []string, ping PingFunc, c Controllers) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(log))

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
		requestIDHeader,
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.ExposeHeaders = []string{requestIDHeader}
	router.Use(cors.New(config))

	router.GET("/healthz", func(ctx *gin.Context) {
		if ping != nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
			defer cancel()
			if err := ping(pingCtx); err != nil {
				log.Warn("health check failed", slog.String("error", err.Error()))
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": statusError, "message": "database unavailable"})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": statusOK})
	})

	api := router.Group("/api")

	if c.Games != nil {
		games := api.Group("/games")
		games.POST("", c.Games.CreateGame)
		games.GET("", c.Games.ListGames)
		games.GET("/:id", c.Games.GetGame)
		games.PATCH("/:id", c.Games.UpdateGame)
		games.DELETE("/:id", c.Games.DeleteGame)
	}

	if c.Players != nil {
		players := api.Group("/players")
		players.POST("", c.Players.CreatePlayer)
		players.GET("", c.Players.ListPlayers)
		players.GET("/:id", c.Players.GetPlayer)
		players.PATCH("/:id", c.Players.UpdatePlayer)
		players.DELETE("/:id", c.Players.DeletePlayer)
	}

	if c.Plays != nil {
		plays := api.Group("/plays")
		plays.POST("", c.Plays.CreatePlay)
		plays.GET("", c.Plays.ListPlays)
		plays.GET("/:id", c.Plays.GetPlay)
		plays.PATCH("/:id", c.Plays.UpdatePlay)
		plays.DELETE("/:id", c.Plays.DeletePlay)
	}

	if c.Participants != nil {
		participants := api.Group("/playparticipants")
		participants.POST("", c.Participants.AddParticipant)
		participants.GET("", c.Participants.ListParticipants)

		// The play id shares the :id wildcard with the /plays/:id routes.
		byPlay := api.Group("/plays/:id/participants")
		byPlay.GET("", c.Participants.ListPlayParticipants)
		byPlay.GET("/:player_id", c.Participants.GetParticipant)
		byPlay.PATCH("/:player_id", c.Participants.UpdateParticipant)
		byPlay.DELETE("/:player_id", c.Participants.RemoveParticipant)
	}

	return router, nil
}
