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

type RitualAttachmentServiceTestSuite struct {
	suite.Suite
	mockAttachmentRepo *MockAttachmentRepository
	mockRitualRepo     *MockRitualRepository
	service            portssvc.RitualAttachmentSvcFacade

	master domain.Actor
	plan   *domain.RitualPlan
}

func (suite *RitualAttachmentServiceTestSuite) SetupTest() {
	suite.mockAttachmentRepo = new(MockAttachmentRepository)
	suite.mockRitualRepo = new(MockRitualRepository)
	suite.service = services.NewRitualAttachmentService(suite.mockAttachmentRepo, suite.mockRitualRepo)

	suite.master = domain.Actor{MemberID: uuid.NewString(), Office: domain.OfficeWorshipfulMaster, Degree: 3}
	suite.plan = &domain.RitualPlan{
		RitualID: uuid.NewString(),
		Status:   domain.RitualDraft,
		Version:  1,
	}
}

func (suite *RitualAttachmentServiceTestSuite) TestAddAttachment_Success() {
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockAttachmentRepo.On("SaveAttachment", ctx, mock.AnythingOfType("domain.RitualAttachment")).Return(nil).Once()

	attachment, err := suite.service.AddAttachment(ctx, suite.master, suite.plan.RitualID, dto.AddAttachmentRequest{
		Title:          "Opening ceremony script",
		AttachmentType: string(domain.AttachmentCeremonyScript),
		FileKey:        "rituals/" + suite.plan.RitualID + "/opening.pdf",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.AttachmentCeremonyScript, attachment.AttachmentType)
	suite.Equal(suite.master.MemberID, attachment.UploadedBy)
	suite.mockAttachmentRepo.AssertExpectations(suite.T())
}

func (suite *RitualAttachmentServiceTestSuite) TestAddAttachment_UnknownType() {
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()

	_, err := suite.service.AddAttachment(ctx, suite.master, suite.plan.RitualID, dto.AddAttachmentRequest{
		Title:          "Unknown kind",
		AttachmentType: "spreadsheet",
		FileKey:        "rituals/x.xlsx",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAttachmentRepo.AssertNotCalled(suite.T(), "SaveAttachment", mock.Anything, mock.Anything)
}

func (suite *RitualAttachmentServiceTestSuite) TestRemoveAttachment_WrongRitual() {
	ctx := context.Background()
	attachment := &domain.RitualAttachment{
		AttachmentID: uuid.NewString(),
		RitualID:     "another-plan",
	}

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockAttachmentRepo.On("FindAttachmentByID", ctx, attachment.AttachmentID).Return(attachment, nil).Once()

	err := suite.service.RemoveAttachment(ctx, suite.master, suite.plan.RitualID, attachment.AttachmentID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAttachmentRepo.AssertNotCalled(suite.T(), "DeleteAttachment", mock.Anything, mock.Anything)
}

func (suite *RitualAttachmentServiceTestSuite) TestRemoveAttachment_Success() {
	ctx := context.Background()
	attachment := &domain.RitualAttachment{
		AttachmentID: uuid.NewString(),
		RitualID:     suite.plan.RitualID,
	}

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockAttachmentRepo.On("FindAttachmentByID", ctx, attachment.AttachmentID).Return(attachment, nil).Once()
	suite.mockAttachmentRepo.On("DeleteAttachment", ctx, attachment.AttachmentID).Return(nil).Once()

	err := suite.service.RemoveAttachment(ctx, suite.master, suite.plan.RitualID, attachment.AttachmentID)

	suite.Require().NoError(err)
	suite.mockAttachmentRepo.AssertExpectations(suite.T())
}

func (suite *RitualAttachmentServiceTestSuite) TestListAttachments_EmptyPlan() {
	ctx := context.Background()

	suite.mockRitualRepo.On("FindRitualByID", ctx, suite.plan.RitualID).Return(suite.plan, nil).Once()
	suite.mockAttachmentRepo.On("ListAttachmentsByRitualID", ctx, suite.plan.RitualID).Return([]domain.RitualAttachment{}, nil).Once()

	attachments, err := suite.service.ListAttachments(ctx, suite.plan.RitualID)

	suite.Require().NoError(err)
	suite.Empty(attachments)
}

func TestRitualAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RitualAttachmentServiceTestSuite))
}
