package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legalpay/api-honorarios/internal/utils"
)

// Claims do token de sessão.
type Claims struct {
	Email string `json:"email"`
	Nome  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Tokens assina e valida tokens de sessão HS256.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL é a validade de cada token emitido.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// GerarToken emite um JWT para o usuário; cada chamada gera um jti diferente.
func (t *Tokens) GerarToken(u Usuario) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: u.Email,
		Nome:  u.Nome,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			ID:        utils.NovoID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidarToken valida assinatura e expiração e retorna as claims.
func (t *Tokens) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
