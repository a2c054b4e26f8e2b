package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// dummyPassword solo alimenta el hash de comparación para emails desconocidos.
const dummyPassword = "auth-service-dummy-password"

// AuthUseCase caso de uso de login: verifica credenciales y emite el token.
type AuthUseCase struct {
	verifier  *CredentialVerifier
	hasher    PasswordHasher
	tokens    TokenIssuer
	log       *logger.Logger
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
// El hash de relleno se calcula una vez, con el mismo costo que los hash guardados.
func NewAuthUseCase(verifier *CredentialVerifier, hasher PasswordHasher, tokens TokenIssuer, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &AuthUseCase{verifier: verifier, hasher: hasher, tokens: tokens, log: log.Named("auth")}
	if dummy, err := hasher.Hash(dummyPassword); err == nil {
		uc.dummyHash = dummy
	} else {
		uc.log.Warn().Err(err).Msg("no se pudo calcular el hash de relleno")
	}
	return uc
}

// Login verifica email/password, genera JWT y retorna token + resumen del usuario.
// Email desconocido y password incorrecto producen el mismo InvalidCredentials
// y ambos pagan una comparación de hash.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.verifier.VerifyCredentials(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			uc.hasher.Matches(in.Password, uc.dummyHash)
		}
		return nil, err
	}
	if !uc.hasher.Matches(in.Password, user.PasswordHash) {
		uc.log.Warn().Str("user_id", user.ID).Msg("login con password incorrecto")
		return nil, domain.InvalidCredentials()
	}
	token, ttl, err := uc.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User: dto.LoginUser{
			ID:       user.ID,
			FullName: user.FullName(),
			Email:    user.Email,
			Role:     user.RoleName(),
		},
	}, nil
}
