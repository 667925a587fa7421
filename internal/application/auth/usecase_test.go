package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamirban/tamirban-api/internal/application/auth"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeOTPStore struct {
	codes    map[string]string
	attempts map[string]int
	saves    map[string]int
	maxSaves int
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{
		codes:    map[string]string{},
		attempts: map[string]int{},
		saves:    map[string]int{},
		maxSaves: 5,
	}
}

func (s *fakeOTPStore) Save(_ context.Context, phone, code string) error {
	if s.saves[phone] >= s.maxSaves {
		return domain.ErrTooManyRequests
	}
	s.saves[phone]++
	s.codes[phone] = code
	s.attempts[phone] = 0
	return nil
}

func (s *fakeOTPStore) Verify(_ context.Context, phone, code string) error {
	stored, ok := s.codes[phone]
	if !ok {
		return domain.ErrOTPExpired
	}
	if stored != code {
		s.attempts[phone]++
		if s.attempts[phone] >= 3 {
			delete(s.codes, phone)
		}
		return domain.ErrOTPMismatch
	}
	delete(s.codes, phone)
	return nil
}

type capturingSMS struct {
	phone, code string
}

func (s *capturingSMS) SendOTP(_ context.Context, phone, code string) error {
	s.phone, s.code = phone, code
	return nil
}

const testSecret = "test-secret"

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeOTPStore, *capturingSMS) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	store := newFakeOTPStore()
	sms := &capturingSMS{}
	uc := auth.NewAuthUseCase(users, store, sms, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tamirban-test",
	})
	return uc, users, store, sms
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _, _, _ := newAuthUC()
	ctx := context.Background()

	admin, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Name:     "مدیر",
		Phone:    "09120000001",
		Email:    "admin@tamirban.ir",
		Password: "s3cret",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "s3cret", admin.PasswordHash)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@tamirban.ir", Password: "s3cret"})
	require.NoError(t, err)
	userID, role, _, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@tamirban.ir", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nobody@tamirban.ir", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_Validation(t *testing.T) {
	uc, _, _, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput) // no phone

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Phone: "0912", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput) // admin without password

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Phone: "0912", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	first, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "بازاریاب", Phone: "09121112233"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMarketer, first.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Name: "دیگری", Phone: "09121112233"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOTPFlow(t *testing.T) {
	uc, _, store, sms := newAuthUC()
	ctx := context.Background()

	marketer, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Name:       "بازاریاب",
		Phone:      "09351234567",
		MarketerID: "mk-1",
	})
	require.NoError(t, err)

	err = uc.RequestOTP(ctx, dto.OTPRequest{Phone: "09351234567"})
	require.NoError(t, err)
	assert.Equal(t, "09351234567", sms.phone)
	assert.Len(t, sms.code, 6)

	// wrong code burns an attempt
	_, err = uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "09351234567", Code: "000000x"})
	assert.ErrorIs(t, err, domain.ErrOTPMismatch)

	resp, err := uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "09351234567", Code: sms.code})
	require.NoError(t, err)
	userID, role, marketerID, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, marketer.ID, userID)
	assert.Equal(t, entity.RoleMarketer, role)
	assert.Equal(t, "mk-1", marketerID)

	// the code is single use
	_, err = uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "09351234567", Code: sms.code})
	assert.ErrorIs(t, err, domain.ErrOTPExpired)

	// unknown phone never gets a code
	err = uc.RequestOTP(ctx, dto.OTPRequest{Phone: "09990000000"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// the store's rate limit surfaces unchanged
	store.maxSaves = 1
	store.saves["09351234567"] = 1
	err = uc.RequestOTP(ctx, dto.OTPRequest{Phone: "09351234567"})
	assert.ErrorIs(t, err, domain.ErrTooManyRequests)
}

func TestLogin_DisabledAccount(t *testing.T) {
	uc, users, _, _ := newAuthUC()
	ctx := context.Background()

	admin, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Phone: "09120000002", Email: "off@tamirban.ir", Password: "pw", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	admin.Status = "disabled"
	require.NoError(t, users.Update(ctx, admin))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "off@tamirban.ir", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
