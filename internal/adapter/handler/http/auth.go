package http

import (
	"net/http"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenHandler issues access tokens for any actor. It is only routed in DEV mode.
type TokenHandler struct {
	Handler
	tokens port.TokenService
}

func NewTokenHandler(tokens port.TokenService, logger *zap.Logger) (*TokenHandler, error) {
	return &TokenHandler{
		Handler: *NewHandler(logger),
		tokens:  tokens,
	}, nil
}

func (th *TokenHandler) IssueToken(ctx *gin.Context) {
	req := tokenRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	switch req.ActorType {
	case domain.ActorUser, domain.ActorVendor:
		if req.ActorID == 0 {
			th.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
	case domain.ActorAdmin:
	default:
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	token, err := th.tokens.CreateToken(&port.TokenPayload{ActorType: req.ActorType, ActorID: req.ActorID})
	if err != nil {
		th.handleError(ctx, err)
		return
	}
	th.logger.Warn("development token issued", zap.String("actor", domain.ActorString(req.ActorType, req.ActorID)))
	th.handleSuccessWithStatus(ctx, tokenResponse{Token: token}, http.StatusCreated)
}
