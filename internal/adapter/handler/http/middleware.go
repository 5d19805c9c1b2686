package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

const (
	IdempotencyHeader  = "Idempotency-Key"
	ReplayHeader       = "X-Idempotent-Replay"
	maxIdempotencyBody = 1 << 20
)

func authCheck(h *Handler, tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// requireActor lets through only the listed actor types.
func requireActor(h *Handler, types ...domain.ActorType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := getAuthPayload(ctx)
		if payload != nil {
			for _, t := range types {
				if payload.ActorType == t {
					ctx.Next()
					return
				}
			}
		}
		h.handleAbort(ctx, domain.ErrForbidden)
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	v, ok := ctx.Get(userPayloadKey)
	if !ok {
		return nil
	}
	payload, _ := v.(*port.TokenPayload)
	return payload
}

func actorOf(ctx *gin.Context) string {
	if payload := getAuthPayload(ctx); payload != nil {
		return payload.Actor()
	}
	return string(domain.ActorAnonymous)
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// idempotent replays the stored response of a write request repeated with the
// same Idempotency-Key. Requests without the header pass through untouched.
// 5xx responses release the key so the client can retry.
func idempotent(h *Handler, idem port.IdempotencyService, ttl time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		keyValue := strings.TrimSpace(ctx.GetHeader(IdempotencyHeader))
		if keyValue == "" || !isWriteMethod(ctx.Request.Method) {
			ctx.Next()
			return
		}

		body, err := readBody(ctx.Request.Body, maxIdempotencyBody)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}
		_ = ctx.Request.Body.Close()
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := domain.IdempotencyKey{
			Key:     keyValue,
			Method:  ctx.Request.Method,
			Path:    ctx.Request.URL.Path,
			ActorID: actorOf(ctx),
		}

		decision, err := idem.GetCachedResponse(ctx, key, body)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}
		switch decision.Outcome {
		case domain.IdempotencyConflict:
			h.handleAbort(ctx, domain.ErrIdempotencyConflict)
			return
		case domain.IdempotencyReplay:
			ctx.Header(ReplayHeader, "true")
			ctx.Data(decision.Record.ResponseStatus, "application/json; charset=utf-8", decision.Record.ResponseBody)
			ctx.Abort()
			return
		}

		record, err := idem.CreatePendingRecord(ctx, key, body, ttl)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}

		recorder := &bodyRecorder{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = recorder

		ctx.Next()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			if err := idem.ReleaseRecord(ctx, record.ID); err != nil {
				h.logger.Error("release idempotency key", zap.Uint64("record_id", record.ID), zap.Error(err))
			}
			return
		}
		if _, err := idem.UpdateRecordWithResponse(ctx, record.ID, status, recorder.body.Bytes()); err != nil {
			h.logger.Error("store idempotent response", zap.Uint64("record_id", record.ID), zap.Error(err))
		}
	}
}
