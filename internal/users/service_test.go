package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/db/models"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
)

type stubRepo struct {
	byUsername map[string]*models.User
	byID       map[uuid.UUID]*models.User
	createErr  error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		byUsername: map[string]*models.User{},
		byID:       map[uuid.UUID]*models.User{},
	}
}

func (s *stubRepo) add(user *models.User) *models.User {
	s.byUsername[user.Username] = user
	s.byID[user.ID] = user
	return user
}

func (s *stubRepo) Create(_ context.Context, dto CreateUserDTO) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.add(dto.ToModel()), nil
}

func (s *stubRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if user, ok := s.byUsername[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.byID))
	for _, user := range s.byID {
		out = append(out, *user)
	}
	return out, nil
}

func (s *stubRepo) Save(_ context.Context, user *models.User) (*models.User, error) {
	return s.add(user), nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	user, ok := s.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.byID, id)
	delete(s.byUsername, user.Username)
	return nil
}

func fakeHash(password string, _ config.PasswordConfig) (string, error) {
	return "hashed:" + password, nil
}

func newTestService(repo repository) *Service {
	return NewService(repo, config.PasswordConfig{}, nil, fakeHash)
}

func registerReq(username string) RegisterRequest {
	return RegisterRequest{
		Username:  username,
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     username + "@example.com",
		BirthDate: "1990-05-10",
	}
}

func TestRegisterCreatesInactiveAdminFlags(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.IsAdmin {
		t.Fatal("registration must never grant admin")
	}
	if !dto.IsActive {
		t.Fatal("new accounts must be active")
	}
	if dto.Preferences.PageSize != 12 {
		t.Fatalf("expected default page size 12, got %d", dto.Preferences.PageSize)
	}

	stored := repo.byUsername["ada"]
	if stored.PasswordHash != "hashed:correct-horse" {
		t.Fatalf("password not hashed: %q", stored.PasswordHash)
	}
	if !stored.BirthDate.Equal(time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("birth date parsed incorrectly: %v", stored.BirthDate)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), registerReq("ada")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), registerReq("ada"))
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRejectsBadBirthDate(t *testing.T) {
	svc := newTestService(newStubRepo())
	req := registerReq("ada")
	req.BirthDate = "10/05/1990"
	_, err := svc.Register(context.Background(), req)
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetMissingUserNotFound(t *testing.T) {
	svc := newTestService(newStubRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateNonAdminCannotSetAdminFlag(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	wantAdmin := true
	_, err = svc.Update(context.Background(), Actor{ID: dto.ID, IsAdmin: false}, dto.ID, UpdateUserRequest{IsAdmin: &wantAdmin})
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.byID[dto.ID].IsAdmin {
		t.Fatal("admin flag must not change")
	}
}

func TestUpdateAdminCanPromote(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	wantAdmin := true
	updated, err := svc.Update(context.Background(), Actor{ID: uuid.New(), IsAdmin: true}, dto.ID, UpdateUserRequest{IsAdmin: &wantAdmin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsAdmin {
		t.Fatal("expected promotion to stick")
	}
}

func TestUpdatePageSizePreference(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	size := 5
	updated, err := svc.Update(context.Background(), Actor{ID: dto.ID}, dto.ID, UpdateUserRequest{
		Preferences: &UpdatePreferences{PageSize: &size},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Preferences.PageSize != 5 {
		t.Fatalf("expected page size 5, got %d", updated.Preferences.PageSize)
	}

	zero := 0
	_, err = svc.Update(context.Background(), Actor{ID: dto.ID}, dto.ID, UpdateUserRequest{
		Preferences: &UpdatePreferences{PageSize: &zero},
	})
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeValidation {
		t.Fatalf("expected validation error for zero page size, got %v", err)
	}
}

func TestDeleteSelfForbidden(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = svc.Delete(context.Background(), Actor{ID: dto.ID, IsAdmin: true}, dto.ID)
	typed := pkgErrors.As(err)
	if typed == nil || typed.Code() != pkgErrors.CodeForbidden {
		t.Fatalf("expected forbidden for self delete, got %v", err)
	}
	if _, ok := repo.byID[dto.ID]; !ok {
		t.Fatal("user must still exist")
	}
}

func TestDeleteOtherUser(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	dto, err := svc.Register(context.Background(), registerReq("ada"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Delete(context.Background(), Actor{ID: uuid.New(), IsAdmin: true}, dto.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), Actor{ID: uuid.New(), IsAdmin: true}, dto.ID); pkgErrors.As(err) == nil || pkgErrors.As(err).Code() != pkgErrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
