package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// fakeUserRepo fake en memoria de UserRepository, compartido por los tests
// del paquete.
type fakeUserRepo struct {
	users map[string]*entity.User
	order []string // ids en orden de inserción
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.users == nil {
		f.users = map[string]*entity.User{}
	}
	f.users[u.ID] = u
	f.order = append(f.order, u.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.users[id])
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	existing, ok := f.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = u.Name
	existing.Tipo = u.Tipo
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Active = active
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeIdentity fake del servicio de identidad: asigna ids secuenciales y
// puede simular fallos.
type fakeIdentity struct {
	nextID string
	err    error
	calls  int
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email, password string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(password) < 6 {
		return "", domain.ErrWeakPassword
	}
	return f.nextID, nil
}

func (f *fakeIdentity) Authenticate(context.Context, string, string) (string, error) {
	return "", domain.ErrUnauthorized
}

func TestCreateUser_CreaCuentaYPerfil(t *testing.T) {
	repo := &fakeUserRepo{}
	ident := &fakeIdentity{nextID: "acc-1"}
	uc := NewUserUseCase(repo, ident)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "  Pedro Rojas ",
		Email:    "Pedro@AquaLife.com",
		Password: "Secreta1!",
	})
	require.NoError(t, err)

	assert.Equal(t, "acc-1", out.User.ID, "el perfil reutiliza el id de la cuenta")
	assert.Equal(t, "Pedro Rojas", out.User.Name)
	assert.Equal(t, "pedro@aqualife.com", out.User.Email)
	assert.Equal(t, entity.TipoUsuario, out.User.Tipo, "sin tipo explícito queda usuario")
	assert.True(t, out.User.Active)
	assert.Equal(t, "Se creó un usuario correctamente.", out.Notification.Message)

	stored := repo.users["acc-1"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.TipoUsuario, stored.Tipo)
}

func TestCreateUser_TipoAdminExplicito(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{}, &fakeIdentity{nextID: "acc-2"})

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@aqualife.com",
		Password: "Secreta1!",
		Tipo:     entity.TipoAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoAdmin, out.User.Tipo)
	assert.Equal(t, "Se creó un admin correctamente.", out.Notification.Message)
}

func TestCreateUser_Validaciones(t *testing.T) {
	ident := &fakeIdentity{nextID: "acc-3"}
	uc := NewUserUseCase(&fakeUserRepo{}, ident)

	cases := []struct {
		name string
		in   dto.CreateUserRequest
		msg  string
	}{
		{"sin nombre", dto.CreateUserRequest{Email: "a@b.com", Password: "Secreta1!"}, "Completa todos los campos requeridos."},
		{"sin email", dto.CreateUserRequest{Name: "Ana", Password: "Secreta1!"}, "Completa todos los campos requeridos."},
		{"sin contraseña", dto.CreateUserRequest{Name: "Ana", Email: "a@b.com"}, "Debes especificar una contraseña."},
		{"tipo desconocido", dto.CreateUserRequest{Name: "Ana", Email: "a@b.com", Password: "Secreta1!", Tipo: "cliente"}, "Tipo de usuario inválido."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.msg, ve.Message)
		})
	}
	assert.Zero(t, ident.calls, "ninguna validación fallida llega al servicio de identidad")
}

func TestCreateUser_PropagaErroresDeIdentidad(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{err: domain.ErrEmailAlreadyExists})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.users, "sin cuenta no se escribe perfil")
}

func TestUpdateUser_CamposVaciosConservanElValor(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{nextID: "acc-1"})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), "acc-1", dto.UpdateUserRequest{Name: "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)
	assert.Equal(t, entity.TipoUsuario, out.Tipo, "tipo vacío no cambia nada")

	out, err = uc.Update(context.Background(), "acc-1", dto.UpdateUserRequest{Tipo: entity.TipoAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)
	assert.Equal(t, entity.TipoAdmin, out.Tipo)
}

func TestUpdateUser_TipoInvalidoYNoEncontrado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{nextID: "acc-1"})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "acc-1", dto.UpdateUserRequest{Tipo: "cliente"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = uc.Update(context.Background(), "no-existe", dto.UpdateUserRequest{Name: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(context.Background(), "", dto.UpdateUserRequest{Name: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetActiveUser_SuspendeYReactiva(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{nextID: "acc-1"})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SetActive(context.Background(), "acc-1", false))
	assert.False(t, repo.users["acc-1"].Active)

	require.NoError(t, uc.SetActive(context.Background(), "acc-1", true))
	assert.True(t, repo.users["acc-1"].Active)

	require.ErrorIs(t, uc.SetActive(context.Background(), "no-existe", false), domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{nextID: "acc-1"})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "acc-1"))
	assert.Empty(t, repo.users)

	require.ErrorIs(t, uc.Delete(context.Background(), "acc-1"), domain.ErrNotFound)
	require.ErrorIs(t, uc.Delete(context.Background(), ""), domain.ErrNotFound)
}

func TestListUsers_OrdenDeInsercion(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, &fakeIdentity{nextID: "acc-1"})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "a@b.com", Password: "Secreta1!",
	})
	require.NoError(t, err)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].Name)
}
