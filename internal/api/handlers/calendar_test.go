package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hospogo-backend/internal/api/handlers"
	"hospogo-backend/internal/calendar"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/mocks"
	"hospogo-backend/internal/service"
	"hospogo-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CalendarHandlerTestSuite defines the test suite for CalendarHandler
type CalendarHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCalendarServiceInterface
	handler     *handlers.CalendarHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CalendarHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCalendarServiceInterface(suite.ctrl)

	suite.handler = handlers.NewCalendarHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/hubs/:id/calendar/buckets", suite.handler.GetBuckets)
}

// TearDownTest cleans up after each test
func (suite *CalendarHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetBuckets tests the GetBuckets handler
func (suite *CalendarHandlerTestSuite) TestGetBuckets() {
	suite.T().Run("Success", func(t *testing.T) {
		hubID := uuid.New()
		templateID := uuid.New()
		start := time.Date(2025, time.January, 10, 18, 0, 0, 0, time.UTC)

		expectedResponse := &service.CalendarResponse{
			HubID:      hubID,
			View:       calendar.ViewWeek,
			RangeStart: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			RangeEnd:   time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
			BucketEvents: []calendar.DisplayEvent{
				{
					ID:    fmt.Sprintf("bucket-%s-%d", templateID, start.UnixMilli()),
					Title: "Dinner: 1/2",
					Start: start,
					End:   start.Add(4 * time.Hour),
				},
			},
			UngroupedEvents: []calendar.Event{},
		}

		suite.mockService.EXPECT().
			Buckets(hubID, calendar.ViewWeek, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets?view=week&date=2025-01-10", hubID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.CalendarResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, hubID, response.HubID)
		assert.Equal(t, calendar.ViewWeek, response.View)
		assert.Len(t, response.BucketEvents, 1)
		assert.Equal(t, "Dinner: 1/2", response.BucketEvents[0].Title)
		assert.Empty(t, response.UngroupedEvents)
	})

	suite.T().Run("DefaultsToMonthView", func(t *testing.T) {
		hubID := uuid.New()

		suite.mockService.EXPECT().
			Buckets(hubID, calendar.ViewMonth, gomock.Any()).
			Return(&service.CalendarResponse{HubID: hubID, View: calendar.ViewMonth}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets", hubID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("AnchorDatePassedThrough", func(t *testing.T) {
		hubID := uuid.New()

		suite.mockService.EXPECT().
			Buckets(hubID, calendar.ViewDay, gomock.Cond(func(date time.Time) bool {
				return date.Year() == 2025 && date.Month() == time.March && date.Day() == 3
			})).
			Return(&service.CalendarResponse{HubID: hubID, View: calendar.ViewDay}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets?view=day&date=2025-03-03", hubID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidHubID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET",
			"/api/v1/hubs/not-a-uuid/calendar/buckets", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidDate", func(t *testing.T) {
		hubID := uuid.New()

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets?date=yesterday-ish", hubID), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidView", func(t *testing.T) {
		hubID := uuid.New()

		suite.mockService.EXPECT().
			Buckets(hubID, calendar.View("fortnight"), gomock.Any()).
			Return(nil, apperrors.ErrInvalidView).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets?view=fortnight", hubID), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("HubNotFound", func(t *testing.T) {
		hubID := uuid.New()

		suite.mockService.EXPECT().
			Buckets(hubID, calendar.ViewMonth, gomock.Any()).
			Return(nil, apperrors.ErrHubNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/hubs/%s/calendar/buckets", hubID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestCalendarHandlerTestSuite runs the test suite
func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
