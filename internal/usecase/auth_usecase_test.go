package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID       map[uuid.UUID]user.User
	raceWinner *user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[uuid.UUID]user.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.raceWinner != nil {
		m.byID[m.raceWinner.ID] = *m.raceWinner
		return errors.New("duplicate key value violates unique constraint")
	}
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(context.Background(), email)
	return err == nil, nil
}

func (m *mockUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.byID[u.ID] = u
	return nil
}

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAuthRegisterIssuesTokenPair(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), newTestJWT())

	usr, access, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens, got access=%q refresh=%q", access, refresh)
	}
	if access == refresh {
		t.Fatalf("access and refresh tokens are identical")
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, newTestJWT())

	in := ucauth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "supersecret"}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), newTestJWT())

	cases := []ucauth.RegisterInput{
		{Name: "", Email: "ada@example.com", Password: "supersecret"},
		{Name: "Ada", Email: "", Password: "supersecret"},
		{Name: "Ada", Email: "ada@example.com", Password: "short"},
	}
	for i, in := range cases {
		if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ucauth.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestAuthLogin(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, newTestJWT())

	in := ucauth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "supersecret"}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}

	usr, access, refresh, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "ADA@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if usr.Name != "Ada" || access == "" || refresh == "" {
		t.Fatalf("unexpected login result: %+v", usr)
	}

	if _, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "ada@example.com",
		Password: "wrongpassword",
	}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "nobody@example.com",
		Password: "supersecret",
	}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthRefreshRoundTrip(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, newTestJWT())

	_, _, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected a fresh token pair")
	}
}

func TestAuthRefreshRejectsAccessToken(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, newTestJWT())

	_, access, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestAuthRefreshInvalidInputs(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), newTestJWT())

	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for garbage, got %v", err)
	}
}

func TestAuthRegisterRaceMapsToDuplicate(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, newTestJWT())

	winner := user.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	repo.raceWinner = &winner

	_, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Other Ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered on insert race, got %v", err)
	}
}
