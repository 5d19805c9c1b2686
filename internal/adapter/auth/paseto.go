package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
)

const defaultTokenTTL = 24 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	ttl    time.Duration
}

// New builds a v4.local token service. Without a configured key a random one is used,
// so tokens do not survive a restart.
func New(conf *config.Auth) (port.TokenService, error) {
	key := paseto.NewV4SymmetricKey()
	ttl := defaultTokenTTL

	if conf != nil {
		if conf.SymmetricKey != "" {
			k, err := paseto.V4SymmetricKeyFromHex(conf.SymmetricKey)
			if err != nil {
				return nil, fmt.Errorf("invalid symmetric key: %w", err)
			}
			key = k
		}
		if conf.TokenTTL > 0 {
			ttl = conf.TokenTTL
		}
	}

	parser := paseto.NewParser()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
		ttl:    ttl,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(payload *port.TokenPayload) (string, error) {
	if payload == nil || payload.ActorType == "" {
		return "", domain.ErrTokenCreation
	}

	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))
	token.SetSubject(payload.Actor())

	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
