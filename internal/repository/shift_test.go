package repository

import (
	"testing"
	"time"

	"hospogo-backend/internal/database/models"
	"hospogo-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the ShiftRepository against a real Postgres
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	hubFactory    *testutils.HubFactory
	profFactory   *testutils.ProfessionalFactory
	shiftFactory  *testutils.ShiftFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.hubFactory = testutils.NewHubFactory()
	suite.profFactory = testutils.NewProfessionalFactory()
	suite.shiftFactory = testutils.NewShiftFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) day(d, hour int) time.Time {
	return time.Date(2025, time.January, d, hour, 0, 0, 0, time.UTC)
}

func (suite *ShiftRepositoryTestSuite) createHub() *models.Hub {
	hub := suite.hubFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(hub).Error)
	return hub
}

func (suite *ShiftRepositoryTestSuite) createProfessional() *models.Professional {
	professional := suite.profFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(professional).Error)
	return professional
}

func (suite *ShiftRepositoryTestSuite) TestGetByHubAndRangeOverlap() {
	hub := suite.createHub()

	inside := suite.shiftFactory.Create(hub.ID, suite.day(10, 18), suite.day(10, 22))
	crossing := suite.shiftFactory.Create(hub.ID, suite.day(9, 22), suite.day(10, 2))
	before := suite.shiftFactory.Create(hub.ID, suite.day(8, 9), suite.day(8, 17))
	cancelled := suite.shiftFactory.Create(hub.ID, suite.day(10, 9), suite.day(10, 17))
	cancelled.Status = models.ShiftStatusCancelled

	for _, shift := range []*models.Shift{inside, crossing, before, cancelled} {
		suite.Require().NoError(suite.repo.Create(shift))
	}

	// Range covers Jan 10 only. The shift crossing in from the evening of
	// Jan 9 still overlaps; the cancelled one is excluded.
	shifts, err := suite.repo.GetByHubAndRange(hub.ID, suite.day(10, 0), suite.day(11, 0))
	suite.Require().NoError(err)

	suite.Len(shifts, 2)
	ids := []string{shifts[0].ID.String(), shifts[1].ID.String()}
	suite.Contains(ids, inside.ID.String())
	suite.Contains(ids, crossing.ID.String())
}

func (suite *ShiftRepositoryTestSuite) TestGetByIDPreloadsAssignments() {
	hub := suite.createHub()
	professional := suite.createProfessional()

	shift := suite.shiftFactory.Create(hub.ID, suite.day(10, 18), suite.day(10, 22))
	suite.Require().NoError(suite.repo.Create(shift))
	suite.Require().NoError(suite.repo.CreateAssignment(&models.ShiftAssignment{
		ShiftID:        shift.ID,
		ProfessionalID: professional.ID,
		Status:         models.AssignmentStatusConfirmed,
	}))

	got, err := suite.repo.GetByID(shift.ID)
	suite.Require().NoError(err)
	suite.Require().Len(got.Assignments, 1)
	suite.Equal(1, got.AssignedStaffCount())
}

func (suite *ShiftRepositoryTestSuite) TestCheckConflict() {
	hub := suite.createHub()
	professional := suite.createProfessional()

	booked := suite.shiftFactory.Create(hub.ID, suite.day(10, 18), suite.day(10, 22))
	suite.Require().NoError(suite.repo.Create(booked))
	suite.Require().NoError(suite.repo.CreateAssignment(&models.ShiftAssignment{
		ShiftID:        booked.ID,
		ProfessionalID: professional.ID,
		Status:         models.AssignmentStatusPending,
	}))

	// Overlapping window conflicts.
	conflict, err := suite.repo.CheckConflict(professional.ID, suite.day(10, 20), suite.day(11, 0), nil)
	suite.Require().NoError(err)
	suite.True(conflict)

	// Disjoint window does not.
	conflict, err = suite.repo.CheckConflict(professional.ID, suite.day(11, 18), suite.day(11, 22), nil)
	suite.Require().NoError(err)
	suite.False(conflict)

	// Excluding the booked shift itself does not conflict.
	conflict, err = suite.repo.CheckConflict(professional.ID, suite.day(10, 20), suite.day(11, 0), &booked.ID)
	suite.Require().NoError(err)
	suite.False(conflict)
}

func (suite *ShiftRepositoryTestSuite) TestCheckConflictIgnoresDeclined() {
	hub := suite.createHub()
	professional := suite.createProfessional()

	declinedShift := suite.shiftFactory.Create(hub.ID, suite.day(10, 18), suite.day(10, 22))
	suite.Require().NoError(suite.repo.Create(declinedShift))
	suite.Require().NoError(suite.repo.CreateAssignment(&models.ShiftAssignment{
		ShiftID:        declinedShift.ID,
		ProfessionalID: professional.ID,
		Status:         models.AssignmentStatusDeclined,
	}))

	conflict, err := suite.repo.CheckConflict(professional.ID, suite.day(10, 18), suite.day(10, 22), nil)
	suite.Require().NoError(err)
	suite.False(conflict)
}

func (suite *ShiftRepositoryTestSuite) TestDeleteAssignment() {
	hub := suite.createHub()
	professional := suite.createProfessional()

	shift := suite.shiftFactory.Create(hub.ID, suite.day(10, 18), suite.day(10, 22))
	suite.Require().NoError(suite.repo.Create(shift))
	suite.Require().NoError(suite.repo.CreateAssignment(&models.ShiftAssignment{
		ShiftID:        shift.ID,
		ProfessionalID: professional.ID,
	}))

	suite.Require().NoError(suite.repo.DeleteAssignment(shift.ID, professional.ID))

	_, err := suite.repo.GetAssignment(shift.ID, professional.ID)
	suite.Error(err)
}

// TestShiftRepositoryTestSuite runs the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repository integration tests in short mode")
	}
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
