package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenData campos propios de la aplicación dentro del token. SuperAdmin
// replica la bandera de metadata del colaborador para que el checker de
// permisos decida sin consultar la DB.
type TokenData struct {
	UserID     string
	Email      string
	Role       string
	SuperAdmin bool
}

// Claims incluye los claims estándar JWT más los campos propios.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"` // director | administrador | operador | freelance
	SuperAdmin bool   `json:"super_admin,omitempty"`
}

// Generate genera un token JWT firmado con los datos del colaborador.
func Generate(secret string, data TokenData, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   data.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     data.UserID,
		Email:      data.Email,
		Role:       data.Role,
		SuperAdmin: data.SuperAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los datos del colaborador.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (TokenData, error) {
	if secret == "" {
		return TokenData{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenData{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return TokenData{}, fmt.Errorf("claims inválidos")
	}
	return TokenData{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		SuperAdmin: claims.SuperAdmin,
	}, nil
}
