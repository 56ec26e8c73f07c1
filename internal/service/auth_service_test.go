package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

func newAuthFixture(t *testing.T) (*stubStaffRepo, IAuthService) {
	t.Helper()
	staffRepo := newStubStaffRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	password := string(hash)

	staffRepo.byCode["E100"] = &model.Staff{
		EmployeeCode:     "E100",
		RoleID:           3,
		UserName:         "temployee",
		Password:         &password,
		FullName:         "Test Employee",
		EmploymentStatus: "Active",
	}

	svc := NewAuthService(staffRepo, "access-key", "refresh-key", noopLogger{})
	return staffRepo, svc
}

func TestLoginSuccess(t *testing.T) {
	_, svc := newAuthFixture(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "temployee", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "E100", res.EmployeeCode)
	assert.Equal(t, 3, res.RoleID)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.NotEqual(t, res.AccessToken, res.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "temployee", Password: "wrong"})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestLoginUnknownUser(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "ghost", Password: "secret123"})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "unknown users get the same error as bad passwords")
}

func TestLoginInactiveAccount(t *testing.T) {
	staffRepo, svc := newAuthFixture(t)
	staffRepo.byCode["E100"].EmploymentStatus = "Inactive"

	_, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "temployee", Password: "secret123"})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	_, svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "temployee", Password: "secret123"})
	assert.NoError(t, err)

	res, err := svc.Refresh(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	_, svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{UserName: "temployee", Password: "secret123"})
	assert.NoError(t, err)

	// An access token is signed with a different key and must not refresh.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRefreshRejectsGarbage(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestChangePassword(t *testing.T) {
	staffRepo, svc := newAuthFixture(t)

	err := svc.ChangePassword(context.Background(), "E100", "secret123", "newsecret456")
	assert.NoError(t, err)

	stored := staffRepo.byCode["E100"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.Password), []byte("newsecret456")))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	_, svc := newAuthFixture(t)

	err := svc.ChangePassword(context.Background(), "E100", "wrong", "newsecret456")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
