package user

import (
	"testing"

	userRepo "photostudio/database/repository/user"
	"photostudio/models"
	"photostudio/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *DefaultUserService {
	return &DefaultUserService{Repo: userRepo.NewMemoryUserRepo()}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newUserService()

	resp, err := svc.RegisterUser(models.User{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@example.com",
		Password:  "Sunset@2026",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.Role)

	auth, err := svc.AuthenticateUser("priya@example.com", "Sunset@2026")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, auth.ID)
	assert.NotEmpty(t, auth.Token)

	// The stored token hash matches the freshly issued token.
	stored, err := svc.GetUserByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(auth.Token), stored.TokenHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newUserService()

	_, err := svc.RegisterUser(models.User{Email: "priya@example.com", Password: "Sunset@2026"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(models.User{Email: "priya@example.com", Password: "Another@2026"})
	assert.Error(t, err)
}

func TestRegisterEnforcesPasswordComplexity(t *testing.T) {
	svc := newUserService()

	weak := []string{
		"short1!",     // too short
		"alllower1!",  // no uppercase
		"ALLUPPER1!",  // no lowercase
		"NoNumbers!!", // no digit
		"NoSymbol123", // no symbol
	}
	for _, pw := range weak {
		_, err := svc.RegisterUser(models.User{Email: "u@example.com", Password: pw})
		assert.Error(t, err, pw)
	}
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	svc := newUserService()

	resp, err := svc.RegisterUser(models.User{Email: "priya@example.com", Password: "Sunset@2026"})
	require.NoError(t, err)

	stored, err := svc.GetUserByID(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Password)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "Sunset@2026", stored.PasswordHash)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	svc := newUserService()

	_, err := svc.RegisterUser(models.User{Email: "priya@example.com", Password: "Sunset@2026"})
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("priya@example.com", "Wrong@2026")
	assert.Error(t, err)

	_, err = svc.AuthenticateUser("nobody@example.com", "Sunset@2026")
	assert.Error(t, err)
}

func TestRevokeAuthTokenClearsHash(t *testing.T) {
	svc := newUserService()

	resp, err := svc.RegisterUser(models.User{Email: "priya@example.com", Password: "Sunset@2026"})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAuthToken(resp.ID))

	stored, err := svc.GetUserByID(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TokenHash)
}

func TestUpdateUserEditsProfileOnly(t *testing.T) {
	svc := newUserService()

	resp, err := svc.RegisterUser(models.User{
		FirstName: "Priya",
		Email:     "priya@example.com",
		Password:  "Sunset@2026",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(models.User{ID: resp.ID, PhoneNumber: "+91 98200 12345"})
	require.NoError(t, err)
	assert.Equal(t, "+91 98200 12345", updated.PhoneNumber)
	assert.Equal(t, "Priya", updated.FirstName)
	assert.NotEmpty(t, updated.PasswordHash)
}
