package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository/mocks"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// plainHasher compara en texto plano: suficiente para probar el flujo sin bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (plainHasher) Matches(plain, hash string) bool  { return hash == "h:"+plain }

// recordingHasher registra los hash contra los que se comparó.
type recordingHasher struct {
	plainHasher
	compared []string
}

func (h *recordingHasher) Matches(plain, hash string) bool {
	h.compared = append(h.compared, hash)
	return h.plainHasher.Matches(plain, hash)
}

type stubIssuer struct {
	err    error
	issued []entity.User
}

func (s *stubIssuer) Issue(u entity.User) (string, time.Duration, error) {
	if s.err != nil {
		return "", 0, s.err
	}
	s.issued = append(s.issued, u)
	return "token-" + u.ID, time.Hour, nil
}

func storedJuan() *entity.User {
	u := juanPerez().WithRole(clientRole)
	u.ID = "u-1"
	u.PasswordHash = "h:secreto123"
	return &u
}

// ─────────────────────────────────────────────────────────────────────────────
// CredentialVerifier
// ─────────────────────────────────────────────────────────────────────────────

func TestVerifyCredentials_CamposVacios(t *testing.T) {
	users := new(mocks.UserRepository)
	v := auth.NewCredentialVerifier(users)

	_, err := v.VerifyCredentials(context.Background(), " ", "x")
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "email", de.Field)

	_, err = v.VerifyCredentials(context.Background(), "juan.perez@email.com", "")
	de, ok = domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "password", de.Field)

	assert.Empty(t, users.Calls)
}

func TestVerifyCredentials_EmailDesconocido(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "nadie@email.com").Return(nil, nil).Once()

	_, err := auth.NewCredentialVerifier(users).VerifyCredentials(context.Background(), "nadie@email.com", "x")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResolveSubject(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "juan.perez@email.com").Return(storedJuan(), nil).Once()
	v := auth.NewCredentialVerifier(users)

	u, err := v.ResolveSubject(context.Background(), "juan.perez@email.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	_, err = v.ResolveSubject(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrFieldRequired)
	users.AssertNumberOfCalls(t, "FindByEmail", 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────────────────────────────────────

func TestLogin_Exito(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "juan.perez@email.com").Return(storedJuan(), nil).Once()
	issuer := &stubIssuer{}
	uc := auth.NewAuthUseCase(auth.NewCredentialVerifier(users), plainHasher{}, issuer, logger.Nop())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "juan.perez@email.com", Password: "secreto123"})

	require.NoError(t, err)
	assert.Equal(t, "token-u-1", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, dto.LoginUser{ID: "u-1", FullName: "Juan Pérez", Email: "juan.perez@email.com", Role: entity.RoleClient}, out.User)
	require.Len(t, issuer.issued, 1)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(storedJuan(), nil).Once()
	issuer := &stubIssuer{}
	uc := auth.NewAuthUseCase(auth.NewCredentialVerifier(users), plainHasher{}, issuer, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "juan.perez@email.com", Password: "otra"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, issuer.issued)
}

func TestLogin_ErrorEmitiendoToken(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(storedJuan(), nil).Once()
	boom := errors.New("sin secreto")
	uc := auth.NewAuthUseCase(auth.NewCredentialVerifier(users), plainHasher{}, &stubIssuer{err: boom}, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "juan.perez@email.com", Password: "secreto123"})

	assert.ErrorIs(t, err, boom)
}

// Un email desconocido también compara contra un hash, para no delatar por tiempo qué cuentas existen.
func TestLogin_EmailDesconocidoComparaHashDeRelleno(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "nadie@email.com").Return(nil, nil).Once()
	users.On("FindByEmail", mock.Anything, "juan.perez@email.com").Return(storedJuan(), nil).Once()
	h := &recordingHasher{}
	issuer := &stubIssuer{}
	uc := auth.NewAuthUseCase(auth.NewCredentialVerifier(users), h, issuer, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@email.com", Password: "secreto123"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Len(t, h.compared, 1)
	assert.NotEmpty(t, h.compared[0])
	assert.NotEqual(t, "h:secreto123", h.compared[0])

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "juan.perez@email.com", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Len(t, h.compared, 2)
	assert.Equal(t, "h:secreto123", h.compared[1])
	assert.Empty(t, issuer.issued)
}

func TestLogin_CamposVaciosNoComparan(t *testing.T) {
	h := &recordingHasher{}
	uc := auth.NewAuthUseCase(auth.NewCredentialVerifier(new(mocks.UserRepository)), h, &stubIssuer{}, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrFieldRequired)
	assert.Empty(t, h.compared)
}
