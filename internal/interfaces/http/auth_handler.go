package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/auth"
	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/domain"
)

// AuthHandler maneja registro, login y el indicador de seguridad de contraseña.
type AuthHandler struct {
	registerUC *registration.UseCase
	loginUC    *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(registerUC *registration.UseCase, loginUC *auth.UseCase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, cedula, telefono, direccion, email, password, confirmar_password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.Register(c.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message})
		case errors.Is(err, domain.ErrCedulaAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CEDULA_EXISTS", Message: "La cédula ya está registrada con otro usuario."})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "El correo ya está registrado."})
		case errors.Is(err, domain.ErrInvalidEmail):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMAIL", Message: "El formato del correo no es válido."})
		case errors.Is(err, domain.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: "La contraseña debe tener al menos 6 caracteres."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.loginUC.Login(c.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message})
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Correo o contraseña incorrectos."})
		case errors.Is(err, domain.ErrAccountSuspended):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SUSPENDED", Message: "Su cuenta está suspendida. No puede iniciar sesión."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
		}
	}
	return c.JSON(out)
}

// PasswordStrength godoc
// @Summary      Nivel de seguridad de una contraseña (advisory)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  object{password=string}  true  "password"
// @Success      200   {object}  dto.PasswordStrengthResponse
// @Router       /api/auth/password-strength [post]
func (h *AuthHandler) PasswordStrength(c *fiber.Ctx) error {
	var in struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.registerUC.Strength(in.Password))
}
