package service

import (
	"errors"
	"testing"
	"time"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/jwt"
	"daily-diet-be/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
	}
}

func (f *fakeUserRepo) Create(id, name, email, passwordHash string) (*entities.User, error) {
	if _, exists := f.byEmail[email]; exists {
		return nil, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
	}
	user := &entities.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	f.byEmail[email] = user
	f.byID[id] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func newAuthServiceForTest(repo *fakeUserRepo) (AuthService, *jwt.JWTService) {
	jwtService := jwt.NewJWTService("test-secret", 48*time.Hour)
	return NewAuthService(repo, jwtService), jwtService
}

func TestRegister_HashesPasswordAndAssignsID(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthServiceForTest(repo)

	err := svc.Register(&models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	user := repo.byEmail["alice@example.com"]
	require.NotNil(t, user)

	// id is assigned server-side
	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)

	// stored value is a bcrypt hash of the plaintext, never the plaintext
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthServiceForTest(repo)

	req := &models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}
	require.NoError(t, svc.Register(req))

	err := svc.Register(&models.RegisterRequest{Name: "Other", Email: "alice@example.com", Password: "pw2"})
	require.Error(t, err)
	assert.Equal(t, "user with this email already exists", err.Error())
}

// racyUserRepo simulates a concurrent registration winning between the
// pre-check and the insert: the email lookup misses but the unique
// constraint fires on create.
type racyUserRepo struct {
	*fakeUserRepo
}

func (r *racyUserRepo) FindByEmail(email string) (*entities.User, error) {
	return nil, errors.New("user not found")
}

func TestRegister_ConstraintBackstopIsConflict(t *testing.T) {
	racy := &racyUserRepo{fakeUserRepo: newFakeUserRepo()}
	svc := NewAuthService(racy, jwt.NewJWTService("test-secret", 48*time.Hour))

	require.NoError(t, svc.Register(&models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw",
	}))

	// second insert hits the unique constraint, not the pre-check
	err := svc.Register(&models.RegisterRequest{
		Name: "Other", Email: "alice@example.com", Password: "pw2",
	})
	require.Error(t, err)
	assert.Equal(t, "user with this email already exists", err.Error())
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc, jwtService := newAuthServiceForTest(repo)

	require.NoError(t, svc.Register(&models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	}))

	resp, err := svc.Login(&models.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	assert.True(t, resp.Auth)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// the token's subject is the user id
	subject, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["alice@example.com"].ID, subject)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthServiceForTest(repo)

	require.NoError(t, svc.Register(&models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	}))

	_, wrongPassword := svc.Login(&models.LoginRequest{Email: "alice@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(&models.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	// no user-existence oracle: both failure modes look identical
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "email or password is incorrect", wrongPassword.Error())
}
