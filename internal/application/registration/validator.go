// Package registration implementa el registro de clientes: validación de los
// campos del formulario "Crear una cuenta", chequeo de cédula duplicada,
// creación de la cuenta en el servicio de identidad y escritura del perfil.
package registration

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/aqualife/aqualife-api/internal/domain"
)

// Reglas de validación (mismas expresiones que la app).
var (
	nameRegex  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÑáéíóúñ\s]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// passwordSymbols alfabeto de símbolos permitidos en la contraseña.
const passwordSymbols = "!@#$%^&*()_-+="

// Mensajes de validación mostrados al usuario.
const (
	msgAllFieldsRequired = "Por favor, completa todos los campos."
	msgNameInvalid       = "El nombre solo puede contener letras y espacios."
	msgCedulaInvalid     = "La cédula debe ser un valor numérico."
	msgPhoneInvalid      = "El teléfono solo puede contener dígitos."
	msgEmailInvalid      = "El formato del correo no es válido."
	msgPasswordMismatch  = "Las contraseñas no coinciden."
	msgPasswordInvalid   = "La contraseña debe tener al menos 8 caracteres, " +
		"1 mayúscula, 1 minúscula, 1 dígito y 1 caracter especial (!@#$%^&*()_-+=)."
)

// Input campos del formulario de registro ya capturados, sin normalizar.
type Input struct {
	Name            string
	Cedula          string
	Phone           string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
}

// Normalized campos normalizados listos para validar y persistir.
type Normalized struct {
	Name      string
	CedulaRaw string
	Cedula    int64 // válido solo tras pasar la regla 3
	Phone     string
	Address   string
	Email     string
	Password  string
}

// normalize recorta espacios de los campos de texto y pasa el email a
// minúsculas. El nombre se lleva a forma NFC para que los acentos
// descompuestos no fallen la regla de letras y espacios.
// Las contraseñas no se normalizan.
func normalize(in Input) Normalized {
	return Normalized{
		Name:      norm.NFC.String(strings.TrimSpace(in.Name)),
		CedulaRaw: strings.TrimSpace(in.Cedula),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  in.Password,
	}
}

// Validate normaliza y valida el formulario con las reglas en orden fijo:
// la primera regla que falla corta la evaluación y las demás no se evalúan.
// Devuelve los campos normalizados si todas las reglas pasan.
func Validate(in Input) (*Normalized, error) {
	n := normalize(in)

	// 1. Campos vacíos
	if n.Name == "" || n.CedulaRaw == "" || n.Phone == "" || n.Address == "" || n.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError(msgAllFieldsRequired)
	}

	// 2. Nombre: solo letras y espacios (incluye acentos del locale)
	if !nameRegex.MatchString(n.Name) {
		return nil, domain.NewValidationError(msgNameInvalid)
	}

	// 3. Cédula numérica
	cedula, err := strconv.ParseInt(n.CedulaRaw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(msgCedulaInvalid)
	}
	n.Cedula = cedula

	// 4. Teléfono: solo dígitos
	if !phoneRegex.MatchString(n.Phone) {
		return nil, domain.NewValidationError(msgPhoneInvalid)
	}

	// 5. Email: local@dominio.tld sin espacios
	if !emailRegex.MatchString(n.Email) {
		return nil, domain.NewValidationError(msgEmailInvalid)
	}

	// 6. Confirmación de contraseña
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidationError(msgPasswordMismatch)
	}

	// 7. Política dura de contraseña
	if !passwordMeetsPolicy(in.Password) {
		return nil, domain.NewValidationError(msgPasswordInvalid)
	}

	return &n, nil
}

// passwordMeetsPolicy aplica la política dura: mínimo 8 caracteres, al menos
// una mayúscula, una minúscula, un dígito y un símbolo del alfabeto permitido,
// y ningún caracter fuera de ese alfabeto.
// (RE2 no tiene lookahead, así que la regla se expresa como conjunción de
// predicados en vez de una sola expresión regular.)
func passwordMeetsPolicy(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false // caracter fuera del alfabeto permitido
		}
	}
	return upper && lower && digit && symbol
}

// Niveles de seguridad de la contraseña.
const (
	StrengthWeak   = "Débil"
	StrengthMedium = "Media"
	StrengthStrong = "Fuerte"
)

// PasswordStrength clasifica la seguridad de una contraseña en [0,5]:
// un punto por longitud ≥8, mayúscula, minúscula, dígito y símbolo.
// Es solo informativo y puede discrepar de la política dura (por ejemplo,
// una contraseña "Media" puede fallar la regla 7); nunca bloquea el envío.
// Entrada vacía devuelve nivel "" (no se muestra indicador).
func PasswordStrength(pw string) (score int, level string) {
	if pw == "" {
		return 0, ""
	}
	if utf8.RuneCountInString(pw) >= 8 {
		score++
	}
	if strings.IndexFunc(pw, unicode.IsUpper) >= 0 {
		score++
	}
	if strings.IndexFunc(pw, unicode.IsLower) >= 0 {
		score++
	}
	if strings.IndexFunc(pw, unicode.IsDigit) >= 0 {
		score++
	}
	if strings.ContainsAny(pw, passwordSymbols) {
		score++
	}
	switch {
	case score <= 2:
		return score, StrengthWeak
	case score <= 4:
		return score, StrengthMedium
	default:
		return score, StrengthStrong
	}
}
