package auth_test

import (
	"testing"
	"time"

	"podcastflow-backend/internal/auth"
	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
	user         *models.User
	password     string
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.authService = auth.NewService(suite.mockUserRepo, &config.Config{
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	})

	suite.password = "correct horse battery staple"
	hash, err := bcrypt.GenerateFromPassword([]byte(suite.password), bcrypt.MinCost)
	require.NoError(suite.T(), err)

	suite.user = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Email:          "sales@acme.test",
		FullName:       "Jordan Reyes",
		PasswordHash:   string(hash),
		Role:           models.UserRoleSales,
		IsActive:       true,
	}
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestLoginAndVerify tests the issue and verify round trip
func (suite *AuthServiceTestSuite) TestLoginAndVerify() {
	suite.mockUserRepo.EXPECT().
		GetByEmail(suite.user.Email).
		Return(suite.user, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		RecordLogin(suite.user.ID, gomock.Any()).
		Return(nil).
		Times(1)

	token, user, err := suite.authService.Login(suite.user.Email, suite.password)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), suite.user.ID, user.ID)

	claims, err := suite.authService.Verify(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.user.ID, claims.UserID)
	assert.Equal(suite.T(), suite.user.OrganizationID, claims.OrganizationID)
	assert.Equal(suite.T(), suite.user.Email, claims.Email)
	assert.Equal(suite.T(), "sales", claims.Role)
	assert.True(suite.T(), claims.ExpiresAt.After(time.Now()))
}

// TestLoginWrongPassword tests a bad password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.mockUserRepo.EXPECT().
		GetByEmail(suite.user.Email).
		Return(suite.user, nil).
		Times(1)

	token, user, err := suite.authService.Login(suite.user.Email, "wrong")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), user)
}

// TestLoginUnknownEmail tests a missing user. The error matches the bad
// password case so callers cannot probe for accounts.
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("ghost@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	token, user, err := suite.authService.Login("ghost@acme.test", suite.password)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), user)
}

// TestLoginInactiveUser tests a deactivated account
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	suite.user.IsActive = false

	suite.mockUserRepo.EXPECT().
		GetByEmail(suite.user.Email).
		Return(suite.user, nil).
		Times(1)

	token, user, err := suite.authService.Login(suite.user.Email, suite.password)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), user)
}

// TestVerifyGarbageToken tests verifying a malformed token
func (suite *AuthServiceTestSuite) TestVerifyGarbageToken() {
	claims, err := suite.authService.Verify("not.a.token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
	assert.Nil(suite.T(), claims)
}

// TestVerifyWrongSecret tests a token signed with a different key
func (suite *AuthServiceTestSuite) TestVerifyWrongSecret() {
	otherService := auth.NewService(suite.mockUserRepo, &config.Config{
		JWTSecret:   "other-secret",
		JWTTTLHours: 1,
	})

	suite.mockUserRepo.EXPECT().
		GetByEmail(suite.user.Email).
		Return(suite.user, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		RecordLogin(suite.user.ID, gomock.Any()).
		Return(nil).
		Times(1)

	token, _, err := otherService.Login(suite.user.Email, suite.password)
	require.NoError(suite.T(), err)

	claims, err := suite.authService.Verify(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
	assert.Nil(suite.T(), claims)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
