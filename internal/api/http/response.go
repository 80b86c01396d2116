package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/playlog/internal/repository"
	"github.com/immxrtalbeast/playlog/internal/service"
)

const (
	statusSuccess = "success"
	statusOK      = "ok"
	statusFail    = "fail"
	statusError   = "error"

	redactedMessage = "internal server error"
)

// Responder writes every response envelope. All controllers share one.
type Responder struct {
	log               *slog.Logger
	redactStoreErrors bool
}

func NewResponder(log *slog.Logger, redactStoreErrors bool) *Responder {
	if log == nil {
		log = slog.Default()
	}
	return &Responder{log: log, redactStoreErrors: redactStoreErrors}
}

// Success wraps a single row as {status, data: {entity: row}}.
func (r *Responder) Success(ctx *gin.Context, code int, entity string, row any) {
	ctx.JSON(code, gin.H{
		"status": statusSuccess,
		"data":   gin.H{entity: row},
	})
}

func (r *Responder) Deleted(ctx *gin.Context, entity, label string, row any) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"message": label + " deleted successfully",
		"data":    gin.H{entity: row},
	})
}

func (r *Responder) List(ctx *gin.Context, plural string, count int, rows any) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": statusOK,
		"count":  count,
		plural:   rows,
	})
}

func (r *Responder) BadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "message": message})
}

// Error maps a service outcome onto a status code and message.
func (r *Responder) Error(ctx *gin.Context, err error) {
	var (
		notFound *service.NotFoundError
		conflict *service.ConflictError
		storeErr *repository.StoreError
	)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "message": unwrapInvalid(err)})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"status": statusFail, "message": notFound.Error()})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, gin.H{"status": statusError, "message": conflict.Reason})
	default:
		message := err.Error()
		if errors.As(err, &storeErr) {
			message = storeErr.Error()
		}
		// Store failures are logged at error level by the services.
		r.log.Debug("request failed",
			slog.String("path", ctx.FullPath()),
			slog.String("request_id", ctx.GetString(requestIDKey)),
			slog.String("error", err.Error()),
		)
		if r.redactStoreErrors {
			message = redactedMessage
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": statusError, "message": message})
	}
}

// unwrapInvalid drops the operation prefix so clients see the validation message only.
func unwrapInvalid(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil || next == service.ErrInvalidInput {
			return err.Error()
		}
		err = next
	}
}
