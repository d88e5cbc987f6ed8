package usecase

import (
	"context"
	"errors"
	"testing"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/dto/request"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 3)
	users := newFakeUserRepo(user)
	repo, _, _ := newTestRepo(users)
	svc := NewUserService(repo, zap.NewNop())

	originalEmail := user.Email
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Name: "New Name",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name = %q, want New Name", updated.Name)
	}
	if updated.Email != originalEmail {
		t.Errorf("email changed to %q without being requested", updated.Email)
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	other := newTestUser(entity.RoleCustomer, 0)
	users := newFakeUserRepo(user, other)
	repo, _, _ := newTestRepo(users)
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Email: other.Email,
	})
	if !errors.Is(err, utils.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}

	// Re-submitting your own email is not a conflict
	if _, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Email: user.Email,
	}); err != nil {
		t.Errorf("own email: %v", err)
	}
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	users := newFakeUserRepo(user)
	repo, sessions, _ := newTestRepo(users)
	svc := NewUserService(repo, zap.NewNop())

	if err := svc.DeleteUser(context.Background(), user.ID.String()); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := svc.GetProfile(context.Background(), user.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("profile after delete: err = %v, want ErrNotFound", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != user.ID {
		t.Errorf("revoked = %v, want [%s]", sessions.revoked, user.ID)
	}
}

func TestDeleteUserUnknownID(t *testing.T) {
	users := newFakeUserRepo()
	repo, _, _ := newTestRepo(users)
	svc := NewUserService(repo, zap.NewNop())

	if err := svc.DeleteUser(context.Background(), "not-a-uuid"); !errors.Is(err, utils.ErrValidation) {
		t.Errorf("bad ID: err = %v, want ErrValidation", err)
	}
	if err := svc.DeleteUser(context.Background(), newTestUser(entity.RoleCustomer, 0).ID.String()); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("unknown ID: err = %v, want ErrNotFound", err)
	}
}

func TestGetAllUsersPaginates(t *testing.T) {
	users := newFakeUserRepo(
		newTestUser(entity.RoleCustomer, 0),
		newTestUser(entity.RoleCustomer, 0),
		newTestUser(entity.RoleEmployee, 0),
	)
	repo, _, _ := newTestRepo(users)
	svc := NewUserService(repo, zap.NewNop())

	page, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("GetAllUsers: %v", err)
	}
	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", page.Pagination.TotalPages)
	}
}
