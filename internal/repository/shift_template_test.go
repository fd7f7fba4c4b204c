package repository

import (
	"testing"

	"hospogo-backend/internal/database/models"
	"hospogo-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftTemplateRepositoryTestSuite tests the ShiftTemplateRepository
type ShiftTemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *ShiftTemplateRepository
	hubFactory      *testutils.HubFactory
	templateFactory *testutils.ShiftTemplateFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftTemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftTemplateRepository(suite.baseTestSuite.DB)
	suite.hubFactory = testutils.NewHubFactory()
	suite.templateFactory = testutils.NewShiftTemplateFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftTemplateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftTemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftTemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftTemplateRepositoryTestSuite) createHub() *models.Hub {
	hub := suite.hubFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(hub).Error)
	return hub
}

func (suite *ShiftTemplateRepositoryTestSuite) TestGetByHubIDStableOrder() {
	hub := suite.createHub()

	// Created out of position order on purpose.
	second := suite.templateFactory.WithSlot(hub.ID, 5, "18:00", "22:00")
	second.Position = 1
	first := suite.templateFactory.WithSlot(hub.ID, 5, "11:00", "14:00")
	first.Position = 0
	third := suite.templateFactory.WithSlot(hub.ID, 5, "22:00", "02:00")
	third.Position = 2

	for _, template := range []*models.ShiftTemplate{second, first, third} {
		suite.Require().NoError(suite.repo.Create(template))
	}

	templates, err := suite.repo.GetByHubID(hub.ID)
	suite.Require().NoError(err)
	suite.Require().Len(templates, 3)
	suite.Equal(first.ID, templates[0].ID)
	suite.Equal(second.ID, templates[1].ID)
	suite.Equal(third.ID, templates[2].ID)
}

func (suite *ShiftTemplateRepositoryTestSuite) TestExistsDuplicate() {
	hub := suite.createHub()

	template := suite.templateFactory.WithSlot(hub.ID, 5, "18:00", "22:00")
	suite.Require().NoError(suite.repo.Create(template))

	exists, err := suite.repo.ExistsDuplicate(hub.ID, 5, "18:00", "22:00", nil)
	suite.Require().NoError(err)
	suite.True(exists)

	// Same window on another day is not a duplicate.
	exists, err = suite.repo.ExistsDuplicate(hub.ID, 6, "18:00", "22:00", nil)
	suite.Require().NoError(err)
	suite.False(exists)

	// Excluding the template itself clears the check for updates.
	exists, err = suite.repo.ExistsDuplicate(hub.ID, 5, "18:00", "22:00", &template.ID)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ShiftTemplateRepositoryTestSuite) TestNextPosition() {
	hub := suite.createHub()

	pos, err := suite.repo.NextPosition(hub.ID)
	suite.Require().NoError(err)
	suite.Equal(0, pos)

	template := suite.templateFactory.Create(hub.ID)
	template.Position = 4
	suite.Require().NoError(suite.repo.Create(template))

	pos, err = suite.repo.NextPosition(hub.ID)
	suite.Require().NoError(err)
	suite.Equal(5, pos)
}

func (suite *ShiftTemplateRepositoryTestSuite) TestGetByHubAndDay() {
	hub := suite.createHub()

	friday := suite.templateFactory.WithSlot(hub.ID, 5, "18:00", "22:00")
	saturday := suite.templateFactory.WithSlot(hub.ID, 6, "18:00", "22:00")
	suite.Require().NoError(suite.repo.Create(friday))
	suite.Require().NoError(suite.repo.Create(saturday))

	templates, err := suite.repo.GetByHubAndDay(hub.ID, 5)
	suite.Require().NoError(err)
	suite.Require().Len(templates, 1)
	suite.Equal(friday.ID, templates[0].ID)
}

// TestShiftTemplateRepositoryTestSuite runs the test suite
func TestShiftTemplateRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repository integration tests in short mode")
	}
	suite.Run(t, new(ShiftTemplateRepositoryTestSuite))
}
