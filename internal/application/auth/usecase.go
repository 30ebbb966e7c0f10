package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventasly/internal/application/dto"
	"github.com/tu-usuario/ventasly/internal/domain"
	"github.com/tu-usuario/ventasly/internal/domain/entity"
	"github.com/tu-usuario/ventasly/internal/domain/repository"
	"github.com/tu-usuario/ventasly/pkg/jwt"
	"github.com/tu-usuario/ventasly/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// Hash bcrypt válido de una contraseña descartada. Cuando el email no existe
// se verifica contra este hash para que el login falle en el mismo tiempo que
// con una contraseña incorrecta.
const decoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher password.Hasher
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher password.Hasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password y persiste con role=user y
// has_paid=false. Devuelve ErrEmailAlreadyExists si el email ya está en uso;
// en ese caso el registro existente queda intacto.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		HasPaid:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		// carrera entre GetByEmail y Create: el unique index manda
		return nil, err
	}
	return uc.respond(user)
}

// Login verifica email/password y genera el JWT. Email desconocido y password
// incorrecto devuelven exactamente el mismo error para no revelar cuál de las
// dos comprobaciones falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.hasher.Verify(in.Password, decoyHash)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.respond(user)
}

func (uc *AuthUseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, user.HasPaid, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}
