package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) Blocked(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}

func newTestService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())
}

func registerInput(name, email, password string) ports.RegisterInput {
	return ports.RegisterInput{Name: name, Email: email, Password: password, PasswordConfirmation: password}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, token, err := svc.Register(context.Background(), registerInput("Alice", "alice@example.com", "pass123"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user with id, got %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.HasRole(domain.RoleClient) {
		t.Fatalf("expected default client role, got %v", user.Roles)
	}

	// Registration signs the new user in: the token's subject is the new id.
	sub, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("token from Register did not validate: %v", err)
	}
	if sub != user.ID {
		t.Fatalf("token subject %q, want %q", sub, user.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, _, err := svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register(context.Background(), registerInput("Bobby", "bob@bobber.com", "other"))
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if msgs := verr.Fields["email"]; len(msgs) == 0 || msgs[0] != "has already been taken" {
		t.Fatalf("unexpected email errors: %v", verr.Fields)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, _, err := svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "bob@bobber.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sub, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if sub != user.ID {
		t.Fatalf("validate(issue(...)) = %q, want %q", sub, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret"))

	if _, err := svc.Login(context.Background(), "bob@bobber.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	// Unknown email and wrong password are indistinguishable to the caller.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := NewAuthService(repo, throttle, "secret", time.Hour, zerolog.Nop())

	_, _, _ = svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret"))

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(context.Background(), "bob@bobber.com", "wrong")
	}

	// Past the limit even the correct password is refused until the window lapses.
	if _, err := svc.Login(context.Background(), "bob@bobber.com", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected throttled login to fail, got %v", err)
	}
}

func TestAuthService_Login_ThrottleResetsOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := NewAuthService(repo, throttle, "secret", time.Hour, zerolog.Nop())

	_, _, _ = svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret"))

	_, _ = svc.Login(context.Background(), "bob@bobber.com", "wrong")
	_, _ = svc.Login(context.Background(), "bob@bobber.com", "wrong")

	if _, err := svc.Login(context.Background(), "bob@bobber.com", "secret"); err != nil {
		t.Fatalf("login below the limit failed: %v", err)
	}
	if throttle.failures["bob@bobber.com"] != 0 {
		t.Fatalf("expected failure count reset, got %d", throttle.failures["bob@bobber.com"])
	}
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	claims := jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_ValidateToken_BadSignature(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	claims := jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ValidateToken_MissingSubject(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ResolveCaller(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, _, err := svc.Register(context.Background(), registerInput("Bob", "bob@bobber.com", "secret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	caller, err := svc.ResolveCaller(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if caller.ID != user.ID || !caller.HasRole(domain.RoleClient) {
		t.Fatalf("unexpected caller: %+v", caller)
	}
}

func TestAuthService_ResolveCaller_DeletedUser(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	// A token whose subject no longer exists degrades to anonymous rather
	// than erroring: the token itself stays valid until expiry.
	caller, err := svc.ResolveCaller(context.Background(), "gone")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if !caller.IsAnonymous() {
		t.Fatalf("expected anonymous caller, got %+v", caller)
	}
}
