package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/services"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, services.DefaultPolicy())
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) profile(userID string, role domain.Role) *domain.UserProfile {
	return &domain.UserProfile{UserID: userID, FullName: "Ana " + userID, Role: role}
}

func (suite *UserServiceTestSuite) TestAuthorize_GrantedByRole() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(suite.profile("u1", domain.RoleContador), nil).Once()

	err := suite.service.AuthorizeUserAction(suite.ctx, "u1", domain.PermApprove)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthorize_Denied() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(suite.profile("u1", domain.RoleAuxiliar), nil).Once()

	err := suite.service.AuthorizeUserAction(suite.ctx, "u1", domain.PermApprove)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	var authErr *apperrors.AuthorizationError
	suite.Require().ErrorAs(err, &authErr)
	suite.Equal("approve", authErr.Permission)
}

func (suite *UserServiceTestSuite) TestAuthorize_MissingProfileIsViewer() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Twice()

	suite.NoError(suite.service.AuthorizeUserAction(suite.ctx, "ghost", domain.PermRead))
	suite.ErrorIs(suite.service.AuthorizeUserAction(suite.ctx, "ghost", domain.PermCreate), apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthorize_RepoFailure() {
	storeErr := apperrors.NewAppError(500, "db down", errors.New("conn refused"))
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(nil, storeErr).Once()

	err := suite.service.AuthorizeUserAction(suite.ctx, "u1", domain.PermRead)

	suite.ErrorIs(err, apperrors.ErrStore)
}

func (suite *UserServiceTestSuite) TestGetOrCreateProfile_Existing() {
	existing := suite.profile("u1", domain.RoleGerente)
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(existing, nil).Once()

	got, err := suite.service.GetOrCreateProfile(suite.ctx, "u1", "Ana")

	suite.Require().NoError(err)
	suite.Equal(existing, got)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateProfile_CreatesViewer() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", suite.ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.UserID == "u1" && p.Role == domain.RoleViewer && p.FullName == "u1"
	})).Return(nil).Once()

	got, err := suite.service.GetOrCreateProfile(suite.ctx, "u1", "")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleViewer, got.Role)
	suite.False(got.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetOrCreateProfile_ConcurrentCreate() {
	existing := suite.profile("u1", domain.RoleViewer)
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", suite.ctx, mock.AnythingOfType("domain.UserProfile")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u1").Return(existing, nil).Once()

	got, err := suite.service.GetOrCreateProfile(suite.ctx, "u1", "Ana")

	suite.Require().NoError(err)
	suite.Equal(existing, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_AdminOnly() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "admin").Return(suite.profile("admin", domain.RoleAdmin), nil).Once()
	suite.mockRepo.On("ListProfiles", suite.ctx).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx, "admin")

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)

	suite.mockRepo.On("FindProfileByID", suite.ctx, "acc").Return(suite.profile("acc", domain.RoleContador), nil).Once()
	_, err = suite.service.ListUsers(suite.ctx, "acc")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_Success() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "admin").Return(suite.profile("admin", domain.RoleAdmin), nil).Once()
	suite.mockRepo.On("FindProfileByID", suite.ctx, "u2").Return(suite.profile("u2", domain.RoleViewer), nil).Once()
	suite.mockRepo.On("UpdateRole", suite.ctx, "u2", domain.RoleContador, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.UpdateUserRole(suite.ctx, "admin", "u2", domain.RoleContador)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleContador, got.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_DeniedBeforeMutation() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "acc").Return(suite.profile("acc", domain.RoleContador), nil).Once()

	_, err := suite.service.UpdateUserRole(suite.ctx, "acc", "u2", domain.RoleAdmin)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_InvalidRole() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "admin").Return(suite.profile("admin", domain.RoleAdmin), nil).Once()

	_, err := suite.service.UpdateUserRole(suite.ctx, "admin", "u2", domain.Role("ROOT"))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_TargetMissing() {
	suite.mockRepo.On("FindProfileByID", suite.ctx, "admin").Return(suite.profile("admin", domain.RoleAdmin), nil).Once()
	suite.mockRepo.On("FindProfileByID", suite.ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateUserRole(suite.ctx, "admin", "nobody", domain.RoleViewer)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestPermissionsFor() {
	suite.Equal([]domain.Permission{domain.PermAll}, suite.service.PermissionsFor(domain.RoleAdmin))
	suite.Equal([]domain.Permission{domain.PermRead}, suite.service.PermissionsFor(domain.RoleViewer))
}
