package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de principal que emite el login. El claim Type permite al middleware
// distinguir personal administrativo de clientes sin consultar la DB.
const (
	TypeAdmin    = "admin"
	TypeCustomer = "customer"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	Codigo      int64  `json:"codigo"`
	Usuario     string `json:"usuario"` // login de staff o email de cliente
	TipoUsuario string `json:"tipo_usuario,omitempty"`
	Type        string `json:"type"` // "admin" | "customer"
}

// Generate genera un token JWT firmado HS256 con los datos del principal.
// La validez (expMinutes) es fija desde la emisión; no hay refresh.
func Generate(secret string, codigo int64, usuario, tipoUsuario, principalType, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", codigo),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Codigo:      codigo,
		Usuario:     usuario,
		TipoUsuario: tipoUsuario,
		Type:        principalType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
