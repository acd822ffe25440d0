package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/core/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
)

type RitualMinutesServiceTestSuite struct {
	suite.Suite
	mockMinutesRepo *MockMinutesRepository
	mockRitualRepo  *MockRitualRepository
	service         portssvc.RitualMinutesSvcFacade

	master domain.Actor
	plan   *domain.RitualPlan
}

func (suite *RitualMinutesServiceTestSuite) SetupTest() {
	suite.mockMinutesRepo = new(MockMinutesRepository)
	suite.mockRitualRepo = new(MockRitualRepository)
	suite.service = services.NewRitualMinutesService(suite.mockMinutesRepo, suite.mockRitualRepo)

	suite.master = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeWorshipfulMaster, Degree: 3}
	suite.plan = &domain.RitualPlan{
		RitualID: uuid.NewString(),
		Status:   domain.RitualCompleted,
		Version:  3,
	}
}

func (suite *RitualMinutesServiceTestSuite) draftMinutes() *domain.RitualMinutes {
	return &domain.RitualMinutes{
		MinutesID:       uuid.NewString(),
		RitualID:        suite.plan.RitualID,
		Content:         "The lodge was opened in due form.",
		AttendanceCount: 18,
		VisitorsCount:   2,
		Status:          domain.MinutesDraft,
		Version:         1,
	}
}

func (suite *RitualMinutesServiceTestSuite) TestCreateMinutes_Success() {
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).
		Return(nil, apperrors.NewNotFoundError("minutes not found")).Once()
	suite.mockMinutesRepo.On("SaveMinutes", ctx, mock.AnythingOfType("domain.RitualMinutes")).Return(nil).Once()

	minutes, err := suite.service.CreateMinutes(ctx, suite.master, suite.plan.RitualID, dto.CreateMinutesRequest{
		Content:         "The lodge was opened in due form.",
		AttendanceCount: 18,
		VisitorsCount:   2,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.MinutesDraft, minutes.Status)
	suite.Equal(int64(1), minutes.Version)
	suite.Equal(suite.plan.RitualID, minutes.RitualID)
	suite.Equal(suite.master.MemberID, minutes.CreatedBy)
	suite.mockMinutesRepo.AssertExpectations(suite.T())
}

func (suite *RitualMinutesServiceTestSuite) TestCreateMinutes_PlanNotCompleted() {
	ctx := context.Background()
	suite.plan.Status = domain.RitualApproved

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()

	_, err := suite.service.CreateMinutes(ctx, suite.master, suite.plan.RitualID, dto.CreateMinutesRequest{
		Content: "Premature record",
	})

	suite.Require().ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.mockMinutesRepo.AssertNotCalled(suite.T(), "SaveMinutes", mock.Anything, mock.Anything)
}

func (suite *RitualMinutesServiceTestSuite) TestCreateMinutes_AlreadyExist() {
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(suite.draftMinutes(), nil).Once()

	_, err := suite.service.CreateMinutes(ctx, suite.master, suite.plan.RitualID, dto.CreateMinutesRequest{
		Content: "Second record",
	})

	suite.Require().ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.mockMinutesRepo.AssertNotCalled(suite.T(), "SaveMinutes", mock.Anything, mock.Anything)
}

func (suite *RitualMinutesServiceTestSuite) TestCreateMinutes_LostCreationRace() {
	// The existence check passed but another writer inserted first; the
	// one-per-plan constraint surfaces as a duplicate from the repository.
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).
		Return(nil, apperrors.NewNotFoundError("minutes not found")).Once()
	suite.mockMinutesRepo.On("SaveMinutes", ctx, mock.AnythingOfType("domain.RitualMinutes")).
		Return(apperrors.NewAppError(409, "minutes already exist for ritual plan "+suite.plan.RitualID, apperrors.ErrDuplicate)).Once()

	_, err := suite.service.CreateMinutes(ctx, suite.master, suite.plan.RitualID, dto.CreateMinutesRequest{
		Content: "Racing record",
	})

	suite.Require().ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.mockMinutesRepo.AssertExpectations(suite.T())
}

func (suite *RitualMinutesServiceTestSuite) TestUpdateMinutes_Success() {
	ctx := context.Background()
	minutes := suite.draftMinutes()
	newContent := "The lodge was opened in due form. A petition was read."

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(minutes, nil).Once()
	suite.mockMinutesRepo.On("UpdateMinutes", ctx, mock.MatchedBy(func(m domain.RitualMinutes) bool {
		return m.Content == newContent && m.Version == int64(1)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMinutes(ctx, suite.master, suite.plan.RitualID, dto.UpdateMinutesRequest{Content: &newContent})

	suite.Require().NoError(err)
	suite.Equal(newContent, updated.Content)
	suite.Equal(int64(2), updated.Version)
	suite.mockMinutesRepo.AssertExpectations(suite.T())
}

func (suite *RitualMinutesServiceTestSuite) TestUpdateMinutes_FinalizedIsImmutable() {
	ctx := context.Background()
	minutes := suite.draftMinutes()
	minutes.Status = domain.MinutesFinalized
	newContent := "Tampered record"

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(minutes, nil).Once()

	_, err := suite.service.UpdateMinutes(ctx, suite.master, suite.plan.RitualID, dto.UpdateMinutesRequest{Content: &newContent})

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockMinutesRepo.AssertNotCalled(suite.T(), "UpdateMinutes", mock.Anything, mock.Anything)
}

func (suite *RitualMinutesServiceTestSuite) TestFinalizeMinutes_Success() {
	ctx := context.Background()
	minutes := suite.draftMinutes()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(minutes, nil).Once()
	suite.mockMinutesRepo.On("UpdateMinutes", ctx, mock.MatchedBy(func(m domain.RitualMinutes) bool {
		return m.Status == domain.MinutesFinalized
	})).Return(nil).Once()

	finalized, err := suite.service.FinalizeMinutes(ctx, suite.master, suite.plan.RitualID)

	suite.Require().NoError(err)
	suite.Equal(domain.MinutesFinalized, finalized.Status)
	suite.Equal(int64(2), finalized.Version)
	suite.mockMinutesRepo.AssertExpectations(suite.T())
}

func (suite *RitualMinutesServiceTestSuite) TestFinalizeMinutes_Twice() {
	ctx := context.Background()
	minutes := suite.draftMinutes()
	minutes.Status = domain.MinutesFinalized

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(minutes, nil).Once()

	_, err := suite.service.FinalizeMinutes(ctx, suite.master, suite.plan.RitualID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockMinutesRepo.AssertNotCalled(suite.T(), "UpdateMinutes", mock.Anything, mock.Anything)
}

func (suite *RitualMinutesServiceTestSuite) TestFinalizeMinutes_LostRaceSurfacesConflict() {
	ctx := context.Background()
	minutes := suite.draftMinutes()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockMinutesRepo.On("FindMinutesByRitualID", ctx, suite.plan.RitualID).Return(minutes, nil).Once()
	suite.mockMinutesRepo.On("UpdateMinutes", ctx, mock.AnythingOfType("domain.RitualMinutes")).
		Return(apperrors.NewConflictError("optimistic locking failed: minutes " + minutes.MinutesID)).Once()

	_, err := suite.service.FinalizeMinutes(ctx, suite.master, suite.plan.RitualID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockMinutesRepo.AssertExpectations(suite.T())
}

func TestRitualMinutesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RitualMinutesServiceTestSuite))
}
