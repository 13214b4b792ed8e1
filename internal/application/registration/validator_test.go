package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput formulario que pasa las 7 reglas; los tests mutan un campo a la vez.
func validInput() Input {
	return Input{
		Name:            "María Pérez",
		Cedula:          "1234567890",
		Phone:           "3001234567",
		Address:         "Calle 10 # 5-20",
		Email:           "Maria.Perez@Example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

func TestValidate_FormularioValido(t *testing.T) {
	n, err := Validate(validInput())
	require.NoError(t, err)
	require.NotNil(t, n)

	assert.Equal(t, "María Pérez", n.Name)
	assert.Equal(t, int64(1234567890), n.Cedula)
	assert.Equal(t, "3001234567", n.Phone)
	assert.Equal(t, "maria.perez@example.com", n.Email, "el email debe quedar en minúsculas")
}

func TestValidate_RecortaEspacios(t *testing.T) {
	in := validInput()
	in.Name = "  María Pérez  "
	in.Cedula = " 1234567890 "
	in.Email = "  maria.perez@example.com  "

	n, err := Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "María Pérez", n.Name)
	assert.Equal(t, int64(1234567890), n.Cedula)
}

// Regla 1: cualquier campo vacío (tras trim) produce el mensaje genérico.
func TestValidate_CamposVacios(t *testing.T) {
	casos := []struct {
		nombre string
		mutate func(*Input)
	}{
		{"nombre vacío", func(in *Input) { in.Name = "" }},
		{"nombre solo espacios", func(in *Input) { in.Name = "   " }},
		{"cédula vacía", func(in *Input) { in.Cedula = "" }},
		{"teléfono vacío", func(in *Input) { in.Phone = "" }},
		{"dirección vacía", func(in *Input) { in.Address = "" }},
		{"email vacío", func(in *Input) { in.Email = "" }},
		{"contraseña vacía", func(in *Input) { in.Password = "" }},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := Validate(in)
			require.Error(t, err)
			assert.Equal(t, "Por favor, completa todos los campos.", err.Error())
		})
	}
}

// Regla 2: el nombre solo admite letras (con acentos y ñ) y espacios.
func TestValidate_NombreInvalido(t *testing.T) {
	for _, nombre := range []string{"Juan123", "Ana-María", "O'Brien", "Luis@Casa"} {
		in := validInput()
		in.Name = nombre
		_, err := Validate(in)
		require.Error(t, err, "nombre %q debe fallar", nombre)
		assert.Equal(t, "El nombre solo puede contener letras y espacios.", err.Error())
	}
}

func TestValidate_NombreConAcentosYEnie(t *testing.T) {
	in := validInput()
	in.Name = "Ñoño Gutiérrez"
	_, err := Validate(in)
	assert.NoError(t, err)
}

// Regla 3: la cédula debe ser íntegramente numérica.
func TestValidate_CedulaInvalida(t *testing.T) {
	for _, cedula := range []string{"12a34", "12.34", "12 34", "-", "abc"} {
		in := validInput()
		in.Cedula = cedula
		_, err := Validate(in)
		require.Error(t, err, "cédula %q debe fallar", cedula)
		assert.Equal(t, "La cédula debe ser un valor numérico.", err.Error())
	}
}

// Regla 4: el teléfono solo admite dígitos (sin +, guiones ni espacios).
func TestValidate_TelefonoInvalido(t *testing.T) {
	for _, tel := range []string{"+573001234567", "300-123", "300 123"} {
		in := validInput()
		in.Phone = tel
		_, err := Validate(in)
		require.Error(t, err, "teléfono %q debe fallar", tel)
		assert.Equal(t, "El teléfono solo puede contener dígitos.", err.Error())
	}
}

// Regla 5: email local@dominio.tld sin espacios.
func TestValidate_EmailInvalido(t *testing.T) {
	for _, email := range []string{"sinarroba.com", "a@b", "a @b.com", "a@b .com"} {
		in := validInput()
		in.Email = email
		_, err := Validate(in)
		require.Error(t, err, "email %q debe fallar", email)
		assert.Equal(t, "El formato del correo no es válido.", err.Error())
	}
}

// Regla 6: la confirmación debe coincidir exactamente.
func TestValidate_ContrasenasNoCoinciden(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "Abcdef1!x"
	_, err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "Las contraseñas no coinciden.", err.Error())
}

// Regla 7: política dura de contraseña.
func TestValidate_ContrasenaInvalida(t *testing.T) {
	casos := []struct {
		nombre   string
		password string
	}{
		{"muy corta", "Ab1!"},
		{"sin mayúscula", "abcdef1!"},
		{"sin minúscula", "ABCDEF1!"},
		{"sin dígito", "Abcdefg!"},
		{"sin símbolo", "Abcdefg1"},
		{"símbolo fuera del alfabeto", "Abcdef1?"},
		{"espacio no permitido", "Abcdef 1!"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			in := validInput()
			in.Password = tc.password
			in.ConfirmPassword = tc.password
			_, err := Validate(in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "La contraseña debe tener al menos 8 caracteres")
		})
	}
}

// El orden de evaluación es fijo: con varios campos inválidos gana la primera regla.
func TestValidate_OrdenDeReglas(t *testing.T) {
	in := validInput()
	in.Name = "Juan123"    // falla regla 2
	in.Cedula = "no-num"   // fallaría regla 3
	in.Phone = "+57"       // fallaría regla 4
	_, err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "El nombre solo puede contener letras y espacios.", err.Error(),
		"debe reportarse la primera regla que falla (nombre)")
}

func TestValidate_VacioGanaATodo(t *testing.T) {
	in := validInput()
	in.Address = ""
	in.Email = "malformado"
	_, err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "Por favor, completa todos los campos.", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificador de seguridad (advisory)
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordStrength_Clasificacion(t *testing.T) {
	casos := []struct {
		password string
		score    int
		level    string
	}{
		{"", 0, ""},
		{"abcdefgh", 2, StrengthWeak},   // longitud + minúsculas
		{"abc", 1, StrengthWeak},        // solo minúsculas
		{"Abcdefg1", 4, StrengthMedium}, // longitud, mayús, minús, dígito
		{"Abcdefg1!", 5, StrengthStrong},
		{"A1!", 3, StrengthMedium}, // sin longitud pero mayús+dígito+símbolo... y sin minúscula
		{"Añbcd1!", 4, StrengthMedium}, // 7 caracteres: la ñ cuenta como uno aunque ocupe dos bytes
	}
	for _, tc := range casos {
		score, level := PasswordStrength(tc.password)
		assert.Equal(t, tc.score, score, "score de %q", tc.password)
		assert.Equal(t, tc.level, level, "nivel de %q", tc.password)
	}
}

// El clasificador es independiente de la política dura: una contraseña "Media"
// puede fallar la regla 7 y una que pasa la regla 7 siempre es "Fuerte".
func TestPasswordStrength_DiscrepaDeLaPolitica(t *testing.T) {
	score, level := PasswordStrength("Abcdefg1")
	assert.Equal(t, 4, score)
	assert.Equal(t, StrengthMedium, level)
	assert.False(t, passwordMeetsPolicy("Abcdefg1"), "Media pero rechazada por la política")

	assert.True(t, passwordMeetsPolicy("Abcdef1!"))
	score, level = PasswordStrength("Abcdef1!")
	assert.Equal(t, 5, score)
	assert.Equal(t, StrengthStrong, level)
}

func TestPasswordStrength_CaracteresRarosNoSuman(t *testing.T) {
	// "?" no está en el alfabeto de símbolos: no aporta el punto de símbolo.
	score, _ := PasswordStrength("abcdefg?")
	assert.Equal(t, 2, score)
}
