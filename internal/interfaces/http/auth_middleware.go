package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/pkg/jwt"
)

// Locals keys para UserID y Tipo en Fiber.
const (
	LocalUserID = "user_id"
	LocalTipo   = "tipo"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Tipo a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, tipo, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalTipo, tipo)
		return c.Next()
	}
}

// RequireTipo autoriza solo a los tipos de perfil indicados.
// Un token sin tipo retorna 401; un tipo no permitido, 403.
func RequireTipo(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipo(c)
		if tipo == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TIPO", Message: "token sin tipo de perfil"})
		}
		for _, t := range allowed {
			if tipo == t {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado para este tipo de perfil"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipo devuelve el tipo de perfil del contexto (después del middleware de auth).
func GetTipo(c *fiber.Ctx) string {
	v := c.Locals(LocalTipo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
