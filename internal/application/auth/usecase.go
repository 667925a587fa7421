package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"github.com/tamirban/tamirban-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// OTPStore keeps one-time codes with a TTL, counts verification attempts and
// enforces a per-phone request rate.
type OTPStore interface {
	// Save stores the code for the phone, replacing any previous one.
	// Returns ErrTooManyRequests when the phone exceeded its hourly quota.
	Save(ctx context.Context, phone, code string) error
	// Verify checks the code. It returns ErrOTPExpired when no code is
	// stored, ErrOTPMismatch on a wrong code (consuming one attempt, and
	// the whole code after too many), and deletes the code on success.
	Verify(ctx context.Context, phone, code string) error
}

// SMSSender delivers a login code to a phone number.
type SMSSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase sign-in flows: password login for panel admins, phone OTP for
// marketers, and account registration.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpStore OTPStore
	sms      SMSSender
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, otpStore OTPStore, sms SMSSender, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, otpStore: otpStore, sms: sms, jwtCfg: jwtCfg}
}

// RegisterUser creates an account. Admin accounts need a password (bcrypt
// hashed); marketer accounts sign in by OTP and may omit it.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMarketer
	}
	if role != entity.RoleAdmin && role != entity.RoleMarketer {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleAdmin && in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByPhone(ctx, in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		MarketerID:   in.MarketerID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks email/password and returns a signed token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(user)
}

// RequestOTP generates a code, stores it with a TTL and sends it by SMS.
// Unknown phones get ErrUserNotFound so the app can route to sign-up.
func (uc *AuthUseCase) RequestOTP(ctx context.Context, in dto.OTPRequest) error {
	if in.Phone == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByPhone(ctx, in.Phone)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := uc.otpStore.Save(ctx, in.Phone, code); err != nil {
		return err
	}
	return uc.sms.SendOTP(ctx, in.Phone, code)
}

// VerifyOTP consumes the code and returns a signed token on success.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.OTPVerifyRequest) (*dto.LoginResponse, error) {
	if in.Phone == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.otpStore.Verify(ctx, in.Phone, in.Code); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByPhone(ctx, in.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.LoginResponse, error) {
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.MarketerID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}

// generateCode draws a 6-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
