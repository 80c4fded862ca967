package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"acututor/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	nextID uint
	byID   map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	created, token, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 0, created.XP)
	require.Equal(t, 1, created.Level)
	require.NotEqual(t, "password123", created.Password, "password must be stored hashed")

	user, loginToken, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	subject, err := svc.VerifyToken(loginToken)
	require.NoError(t, err)
	require.Equal(t, created.ID, subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Alice Again", "alice@example.com", "different")
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.Len(t, repo.byID, 1, "no duplicate record may be created")
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Wrong password and unknown email collapse to the same error.
	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenExpired(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")
	svc.tokenTTL = -time.Minute

	token, err := svc.issueToken(42)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenTampered(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	token, err := svc.issueToken(42)
	require.NoError(t, err)

	// Flip the last signature character.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.VerifyToken(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenWrongKeyAndGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	other := NewAuthService(newFakeUserRepo(), "other-secret")
	token, err := other.issueToken(42)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.VerifyToken("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{UserID: 42})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
