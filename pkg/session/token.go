package session

import (
	"errors"
	"strconv"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

const tokenIssuer = "youth-connect"

// Claims 会话令牌声明，ID(jti) 即会话 ID
type Claims struct {
	UserID uint `json:"uid"`
	jwtv5.RegisteredClaims
}

// TokenCodec 会话令牌签名与校验（HS256）
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec 创建令牌编解码器
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Sign 为会话签发令牌
func (c *TokenCodec) Sign(s *Session) (string, error) {
	claims := Claims{
		UserID: s.UserID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        s.ID,
			Subject:   strconv.FormatUint(uint64(s.UserID), 10),
			IssuedAt:  jwtv5.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwtv5.NewNumericDate(s.ExpiresAt),
			Issuer:    tokenIssuer,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse 解析并验证令牌
func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	}, jwtv5.WithIssuer(tokenIssuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
