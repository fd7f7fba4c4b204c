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

// ShiftTemplateServiceTestSuite defines the test suite for ShiftTemplateService
type ShiftTemplateServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockShiftTemplateRepositoryInterface
	hubRepo *mocks.MockHubRepositoryInterface
	svc     *service.ShiftTemplateService
}

// SetupTest sets up the test suite
func (suite *ShiftTemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockShiftTemplateRepositoryInterface(suite.ctrl)
	suite.hubRepo = mocks.NewMockHubRepositoryInterface(suite.ctrl)
	suite.svc = service.NewShiftTemplateService(suite.repo, suite.hubRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ShiftTemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftTemplateServiceTestSuite) validRequest() *service.CreateShiftTemplateRequest {
	return &service.CreateShiftTemplateRequest{
		HubID:         uuid.New(),
		DayOfWeek:     5,
		StartTime:     "18:00",
		EndTime:       "22:00",
		Label:         "Dinner",
		RequiredStaff: 2,
	}
}

func (suite *ShiftTemplateServiceTestSuite) TestCreateSuccess() {
	req := suite.validRequest()

	suite.hubRepo.EXPECT().GetByID(req.HubID).Return(&models.Hub{Status: models.HubStatusActive}, nil)
	suite.repo.EXPECT().ExistsDuplicate(req.HubID, 5, "18:00", "22:00", nil).Return(false, nil)
	suite.repo.EXPECT().NextPosition(req.HubID).Return(3, nil)
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.ShiftTemplate) error {
		suite.Equal(req.HubID, t.HubID)
		suite.Equal(3, t.Position)
		return nil
	})

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.Equal("Dinner", resp.Label)
	suite.Equal(3, resp.Position)
}

func (suite *ShiftTemplateServiceTestSuite) TestCreateTimeFormat() {
	testCases := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   bool
	}{
		{name: "Valid evening slot", startTime: "18:00", endTime: "22:00", wantErr: false},
		{name: "Midnight crossing slot", startTime: "22:00", endTime: "02:00", wantErr: false},
		{name: "Equal start and end", startTime: "09:00", endTime: "09:00", wantErr: false},
		{name: "Hour out of range", startTime: "25:00", endTime: "22:00", wantErr: true},
		{name: "Minute out of range", startTime: "18:61", endTime: "22:00", wantErr: true},
		{name: "Missing leading zero", startTime: "9:00", endTime: "22:00", wantErr: true},
		{name: "Not a time at all", startTime: "dinner", endTime: "22:00", wantErr: true},
		{name: "Seconds not allowed", startTime: "18:00:00", endTime: "22:00", wantErr: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			req.StartTime = tc.startTime
			req.EndTime = tc.endTime

			if !tc.wantErr {
				suite.hubRepo.EXPECT().GetByID(req.HubID).Return(&models.Hub{Status: models.HubStatusActive}, nil)
				suite.repo.EXPECT().ExistsDuplicate(req.HubID, req.DayOfWeek, tc.startTime, tc.endTime, nil).Return(false, nil)
				suite.repo.EXPECT().NextPosition(req.HubID).Return(0, nil)
				suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
			}

			resp, err := suite.svc.Create(req)

			if tc.wantErr {
				suite.ErrorIs(err, apperrors.ErrInvalidTimeOfDay)
				suite.Nil(resp)
			} else {
				suite.NoError(err)
				suite.Equal(tc.startTime, resp.StartTime)
			}
		})
	}
}

func (suite *ShiftTemplateServiceTestSuite) TestCreateHubSuspended() {
	req := suite.validRequest()
	suite.hubRepo.EXPECT().GetByID(req.HubID).Return(&models.Hub{Status: models.HubStatusSuspended}, nil)

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrHubSuspended)
}

func (suite *ShiftTemplateServiceTestSuite) TestCreateDuplicate() {
	req := suite.validRequest()
	suite.hubRepo.EXPECT().GetByID(req.HubID).Return(&models.Hub{Status: models.HubStatusActive}, nil)
	suite.repo.EXPECT().ExistsDuplicate(req.HubID, 5, "18:00", "22:00", nil).Return(true, nil)

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrShiftTemplateExists)
}

func (suite *ShiftTemplateServiceTestSuite) TestUpdateDayOfWeekOutOfRange() {
	id := uuid.New()
	day := 7
	suite.repo.EXPECT().GetByID(id).Return(&models.ShiftTemplate{}, nil)

	resp, err := suite.svc.Update(id, &service.UpdateShiftTemplateRequest{DayOfWeek: &day})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDayOfWeek)
}

func (suite *ShiftTemplateServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Update(id, &service.UpdateShiftTemplateRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrShiftTemplateNotFound)
}

func (suite *ShiftTemplateServiceTestSuite) TestGetByHubNotFound() {
	hubID := uuid.New()
	suite.hubRepo.EXPECT().GetByID(hubID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByHub(hubID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrHubNotFound)
}

// TestShiftTemplateServiceTestSuite runs the test suite
func TestShiftTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftTemplateServiceTestSuite))
}
