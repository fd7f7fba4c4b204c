package service_test

import (
	"testing"

	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/mocks"
	"hospogo-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// HubServiceTestSuite defines the test suite for HubService
type HubServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *mocks.MockHubRepositoryInterface
	svc  *service.HubService
}

// SetupTest sets up the test suite
func (suite *HubServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockHubRepositoryInterface(suite.ctrl)
	suite.svc = service.NewHubService(suite.repo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *HubServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HubServiceTestSuite) TestCreateSuccess() {
	req := &service.CreateHubRequest{
		Name:    "tonys-barbershop",
		Title:   "Tony's Barbershop",
		Address: "12 High St",
	}

	suite.repo.EXPECT().GetByName("tonys-barbershop").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(hub *models.Hub) error {
		suite.Equal("tonys-barbershop", hub.Name)
		suite.Equal(models.HubStatusActive, hub.Status)
		suite.Equal("Local", hub.Timezone)
		return nil
	})

	resp, err := suite.svc.Create(req)
	suite.NoError(err)
	suite.Equal("Tony's Barbershop", resp.Title)
	suite.Equal(models.HubStatusActive, resp.Status)
}

func (suite *HubServiceTestSuite) TestCreateDuplicateName() {
	req := &service.CreateHubRequest{
		Name:  "tonys-barbershop",
		Title: "Tony's Barbershop",
	}

	suite.repo.EXPECT().GetByName("tonys-barbershop").Return(&models.Hub{Name: "tonys-barbershop"}, nil)

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrHubExists)
}

func (suite *HubServiceTestSuite) TestCreateValidationFailure() {
	req := &service.CreateHubRequest{
		Name: "tonys-barbershop",
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.Error(err)
}

func (suite *HubServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByID(id)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrHubNotFound)
}

func (suite *HubServiceTestSuite) TestGetAllClampsPagination() {
	suite.repo.EXPECT().GetAll(20, 0).Return([]models.Hub{{Name: "tonys-barbershop"}}, int64(1), nil)

	resp, err := suite.svc.GetAll(0, 500)
	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Len(resp.Hubs, 1)
	suite.Equal(int64(1), resp.Total)
}

func (suite *HubServiceTestSuite) TestUpdateSuspendsHub() {
	id := uuid.New()
	suspended := models.HubStatusSuspended

	suite.repo.EXPECT().GetByID(id).Return(&models.Hub{Name: "tonys-barbershop", Status: models.HubStatusActive}, nil)
	suite.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(hub *models.Hub) error {
		suite.Equal(models.HubStatusSuspended, hub.Status)
		return nil
	})

	resp, err := suite.svc.Update(id, &service.UpdateHubRequest{Status: &suspended})
	suite.NoError(err)
	suite.Equal(models.HubStatusSuspended, resp.Status)
}

func (suite *HubServiceTestSuite) TestUpdateRejectsUnknownStatus() {
	id := uuid.New()
	bogus := models.HubStatus("mothballed")

	suite.repo.EXPECT().GetByID(id).Return(&models.Hub{Status: models.HubStatusActive}, nil)

	resp, err := suite.svc.Update(id, &service.UpdateHubRequest{Status: &bogus})
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *HubServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(id)
	suite.ErrorIs(err, apperrors.ErrHubNotFound)
}

// TestHubServiceTestSuite runs the test suite
func TestHubServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HubServiceTestSuite))
}
