package port

import "github.com/MikeRez0/esimhub/internal/core/domain"

type TokenPayload struct {
	ActorType domain.ActorType
	ActorID   uint64
}

// Actor returns the identity string used to scope idempotency keys.
func (p *TokenPayload) Actor() string {
	return domain.ActorString(p.ActorType, p.ActorID)
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload *TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
