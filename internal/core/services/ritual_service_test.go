package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/core/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
)

type RitualServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRitualRepository
	service  portssvc.RitualSvcFacade

	master  domain.Actor
	warden  domain.Actor
	fellow  domain.Actor
	creator domain.Actor
}

func (suite *RitualServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRitualRepository)
	suite.service = services.NewRitualService(suite.mockRepo)

	suite.master = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeWorshipfulMaster, Degree: 3}
	suite.warden = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeSeniorWarden, Degree: 3}
	suite.fellow = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeNone, Degree: 2}
	suite.creator = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeNone, Degree: 3}
}

func (suite *RitualServiceTestSuite) draftPlan() *domain.RitualPlan {
	return &domain.RitualPlan{
		RitualID:   uuid.NewString(),
		Title:      "Regular work",
		Date:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:  "19:30",
		RitualType: domain.RitualRegular,
		Degree:     1,
		Status:     domain.RitualDraft,
		Version:    1,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC().Add(-time.Hour),
			CreatedBy: suite.creator.MemberID,
		},
	}
}

func (suite *RitualServiceTestSuite) TestCreateRitual_Success() {
	ctx := context.Background()
	req := dto.CreateRitualRequest{
		Title:      "Initiation of two candidates",
		Date:       "2026-10-03",
		StartTime:  "19:00",
		RitualType: string(domain.RitualInitiation),
		Degree:     1,
	}

	suite.mockRepo.On("SaveRitual", ctx, mock.AnythingOfType("domain.RitualPlan")).Return(nil).Once()

	plan, err := suite.service.CreateRitual(ctx, suite.master, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.NotEmpty(plan.RitualID)
	suite.Equal(domain.RitualDraft, plan.Status)
	suite.Equal(domain.RitualInitiation, plan.RitualType)
	suite.Equal(int64(1), plan.Version)
	suite.Equal(suite.master.MemberID, plan.CreatedBy)
	suite.Nil(plan.ApprovedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RitualServiceTestSuite) TestCreateRitual_ForbiddenForFellow() {
	ctx := context.Background()
	req := dto.CreateRitualRequest{
		Title:      "Not allowed",
		Date:       "2026-10-03",
		StartTime:  "19:00",
		RitualType: string(domain.RitualRegular),
		Degree:     1,
	}

	plan, err := suite.service.CreateRitual(ctx, suite.fellow, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(plan)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRitual", mock.Anything, mock.Anything)
}

func (suite *RitualServiceTestSuite) TestCreateRitual_UnknownType() {
	ctx := context.Background()
	req := dto.CreateRitualRequest{
		Title:      "Bad type",
		Date:       "2026-10-03",
		StartTime:  "19:00",
		RitualType: "banquet",
		Degree:     1,
	}

	_, err := suite.service.CreateRitual(ctx, suite.master, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RitualServiceTestSuite) TestCreateRitual_BadDate() {
	ctx := context.Background()
	req := dto.CreateRitualRequest{
		Title:      "Bad date",
		Date:       "03/10/2026",
		StartTime:  "19:00",
		RitualType: string(domain.RitualRegular),
		Degree:     1,
	}

	_, err := suite.service.CreateRitual(ctx, suite.master, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RitualServiceTestSuite) TestUpdateRitual_Success() {
	ctx := context.Background()
	plan := suite.draftPlan()
	newTitle := "Rescheduled work"

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()
	suite.mockRepo.On("UpdateRitualFields", ctx, mock.MatchedBy(func(p domain.RitualPlan) bool {
		return p.Title == newTitle && p.Version == int64(1)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRitual(ctx, suite.master, plan.RitualID, dto.UpdateRitualRequest{Title: &newTitle})

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.Equal(int64(2), updated.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RitualServiceTestSuite) TestUpdateRitual_RejectedAfterApproval() {
	ctx := context.Background()
	plan := suite.draftPlan()
	plan.Status = domain.RitualApproved
	newTitle := "Too late"

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()

	_, err := suite.service.UpdateRitual(ctx, suite.master, plan.RitualID, dto.UpdateRitualRequest{Title: &newTitle})

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRitualFields", mock.Anything, mock.Anything)
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_ApproveByMaster() {
	ctx := context.Background()
	plan := suite.draftPlan()

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()
	suite.mockRepo.On("UpdateRitualStatus", ctx, mock.MatchedBy(func(p domain.RitualPlan) bool {
		return p.Status == domain.RitualApproved && p.ApprovedBy != nil && *p.ApprovedBy == suite.master.MemberID
	})).Return(nil).Once()

	approved, err := suite.service.TransitionRitual(ctx, suite.master, plan.RitualID, domain.RitualApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.RitualApproved, approved.Status)
	suite.Require().NotNil(approved.ApprovedBy)
	suite.Equal(suite.master.MemberID, *approved.ApprovedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_ApproveForbiddenForWarden() {
	ctx := context.Background()
	plan := suite.draftPlan()

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()

	_, err := suite.service.TransitionRitual(ctx, suite.warden, plan.RitualID, domain.RitualApproved)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRitualStatus", mock.Anything, mock.Anything)
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_DoubleApproveConflicts() {
	ctx := context.Background()
	plan := suite.draftPlan()
	plan.Status = domain.RitualApproved

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()

	_, err := suite.service.TransitionRitual(ctx, suite.master, plan.RitualID, domain.RitualApproved)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRitualStatus", mock.Anything, mock.Anything)
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_CompleteFromDraftConflicts() {
	ctx := context.Background()
	plan := suite.draftPlan()

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()

	_, err := suite.service.TransitionRitual(ctx, suite.master, plan.RitualID, domain.RitualCompleted)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_CancelByCreator() {
	ctx := context.Background()
	plan := suite.draftPlan()

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()
	suite.mockRepo.On("UpdateRitualStatus", ctx, mock.MatchedBy(func(p domain.RitualPlan) bool {
		return p.Status == domain.RitualCancelled
	})).Return(nil).Once()

	cancelled, err := suite.service.TransitionRitual(ctx, suite.creator, plan.RitualID, domain.RitualCancelled)

	suite.Require().NoError(err)
	suite.Equal(domain.RitualCancelled, cancelled.Status)
	suite.Nil(cancelled.ApprovedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_CancelledIsTerminal() {
	ctx := context.Background()
	plan := suite.draftPlan()
	plan.Status = domain.RitualCancelled

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()

	_, err := suite.service.TransitionRitual(ctx, suite.master, plan.RitualID, domain.RitualApproved)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *RitualServiceTestSuite) TestTransitionRitual_LostRaceSurfacesConflict() {
	// A concurrent cancel bumped the version between our read and write; the
	// conditional update affects zero rows and the repository reports conflict.
	ctx := context.Background()
	plan := suite.draftPlan()

	suite.mockRepo.On("FindRitualByID", ctx, plan.RitualID).Return(plan, nil).Once()
	suite.mockRepo.On("UpdateRitualStatus", ctx, mock.AnythingOfType("domain.RitualPlan")).
		Return(apperrors.NewConflictError("optimistic locking failed: ritual plan " + plan.RitualID)).Once()

	_, err := suite.service.TransitionRitual(ctx, suite.master, plan.RitualID, domain.RitualApproved)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RitualServiceTestSuite) TestGetRitualByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindRitualByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("ritual plan missing not found")).Once()

	_, err := suite.service.GetRitualByID(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RitualServiceTestSuite) TestListRituals_EmptyPage() {
	ctx := context.Background()
	filter := domain.RitualListFilter{Status: domain.RitualApproved}

	suite.mockRepo.On("ListRituals", ctx, filter, 20, (*string)(nil)).Return([]domain.RitualPlan{}, nil, nil).Once()

	plans, token, err := suite.service.ListRituals(ctx, filter, 0, nil)

	suite.Require().NoError(err)
	suite.Empty(plans)
	suite.Nil(token)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRitualServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RitualServiceTestSuite))
}
