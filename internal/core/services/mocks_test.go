package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// MockRitualRepository is a mock type for the RitualPlanRepositoryWithTx interface
type MockRitualRepository struct {
	mock.Mock
}

func (m *MockRitualRepository) FindRitualByID(ctx context.Context, ritualID string) (*domain.RitualPlan, error) {
	args := m.Called(ctx, ritualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualPlan), args.Error(1)
}

func (m *MockRitualRepository) ListRituals(ctx context.Context, filter domain.RitualListFilter, limit int, nextToken *string) ([]domain.RitualPlan, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.RitualPlan), token, args.Error(2)
}

func (m *MockRitualRepository) SaveRitual(ctx context.Context, plan domain.RitualPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRitualRepository) UpdateRitualFields(ctx context.Context, plan domain.RitualPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRitualRepository) UpdateRitualStatus(ctx context.Context, plan domain.RitualPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRitualRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRitualRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRitualRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockRoleRepository is a mock type for the RitualRoleRepository interface
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) SaveRole(ctx context.Context, role domain.RitualRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.RitualRole, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualRole), args.Error(1)
}

func (m *MockRoleRepository) FindRoleByType(ctx context.Context, ritualID string, roleType domain.RoleType) (*domain.RitualRole, error) {
	args := m.Called(ctx, ritualID, roleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualRole), args.Error(1)
}

func (m *MockRoleRepository) ListRolesByRitualID(ctx context.Context, ritualID string) ([]domain.RitualRole, error) {
	args := m.Called(ctx, ritualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RitualRole), args.Error(1)
}

func (m *MockRoleRepository) UpdateRole(ctx context.Context, role domain.RitualRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// MockWorkRepository is a mock type for the RitualWorkRepository interface
type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) SaveWork(ctx context.Context, work domain.RitualWork) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.RitualWork, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualWork), args.Error(1)
}

func (m *MockWorkRepository) ListWorksByRitualID(ctx context.Context, ritualID string) ([]domain.RitualWork, error) {
	args := m.Called(ctx, ritualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RitualWork), args.Error(1)
}

func (m *MockWorkRepository) NextWorkOrder(ctx context.Context, ritualID string) (int, error) {
	args := m.Called(ctx, ritualID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkRepository) UpdateWork(ctx context.Context, work domain.RitualWork) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWorkRepository) DeleteWork(ctx context.Context, workID string) error {
	args := m.Called(ctx, workID)
	return args.Error(0)
}

// MockMinutesRepository is a mock type for the RitualMinutesRepository interface
type MockMinutesRepository struct {
	mock.Mock
}

func (m *MockMinutesRepository) SaveMinutes(ctx context.Context, minutes domain.RitualMinutes) error {
	args := m.Called(ctx, minutes)
	return args.Error(0)
}

func (m *MockMinutesRepository) FindMinutesByID(ctx context.Context, minutesID string) (*domain.RitualMinutes, error) {
	args := m.Called(ctx, minutesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualMinutes), args.Error(1)
}

func (m *MockMinutesRepository) FindMinutesByRitualID(ctx context.Context, ritualID string) (*domain.RitualMinutes, error) {
	args := m.Called(ctx, ritualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualMinutes), args.Error(1)
}

func (m *MockMinutesRepository) UpdateMinutes(ctx context.Context, minutes domain.RitualMinutes) error {
	args := m.Called(ctx, minutes)
	return args.Error(0)
}

// MockAttachmentRepository is a mock type for the RitualAttachmentRepository interface
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.RitualAttachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.RitualAttachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListAttachmentsByRitualID(ctx context.Context, ritualID string) ([]domain.RitualAttachment, error) {
	args := m.Called(ctx, ritualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RitualAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

// MockMemberRepository is a mock type for the MemberReader interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMembersByIDs(ctx context.Context, memberIDs []string) (map[string]domain.Member, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
