package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	"github.com/luzyverdad/lodge_management_app/internal/core/services"
)

func TestAuthorizeRitualAction(t *testing.T) {
	master := domain.Actor{MemberID: "m-master", Office: domain.OfficeWorshipfulMaster, Degree: 3}
	seniorWarden := domain.Actor{MemberID: "m-sw", Office: domain.OfficeSeniorWarden, Degree: 3}
	juniorWarden := domain.Actor{MemberID: "m-jw", Office: domain.OfficeJuniorWarden, Degree: 3}
	masterMason := domain.Actor{MemberID: "m-mm", Office: domain.OfficeNone, Degree: 3}
	fellow := domain.Actor{MemberID: "m-fellow", Office: domain.OfficeNone, Degree: 2}
	secretaryFellow := domain.Actor{MemberID: "m-sec", Office: domain.OfficeSecretary, Degree: 2}

	plan := &domain.RitualPlan{
		RitualID: "r-1",
		Status:   domain.RitualDraft,
		AuditFields: domain.AuditFields{
			CreatedBy: "m-creator",
		},
	}
	creator := domain.Actor{MemberID: "m-creator", Office: domain.OfficeNone, Degree: 3}

	tests := []struct {
		name    string
		actor   domain.Actor
		op      services.RitualOperation
		plan    *domain.RitualPlan
		allowed bool
	}{
		{"master creates", master, services.OpCreateRitual, nil, true},
		{"senior warden creates", seniorWarden, services.OpCreateRitual, nil, true},
		{"junior warden creates", juniorWarden, services.OpCreateRitual, nil, true},
		{"master mason without office creates", masterMason, services.OpCreateRitual, nil, true},
		{"fellow cannot create", fellow, services.OpCreateRitual, nil, false},
		{"secretary below degree three cannot create", secretaryFellow, services.OpCreateRitual, nil, false},

		{"master mason edits", masterMason, services.OpEditRitual, plan, true},
		{"fellow cannot edit", fellow, services.OpEditRitual, plan, false},

		{"only the master approves", master, services.OpApproveRitual, plan, true},
		{"senior warden cannot approve", seniorWarden, services.OpApproveRitual, plan, false},
		{"master mason cannot approve", masterMason, services.OpApproveRitual, plan, false},
		{"creator cannot approve", creator, services.OpApproveRitual, plan, false},

		{"master completes", master, services.OpCompleteRitual, plan, true},
		{"warden completes", juniorWarden, services.OpCompleteRitual, plan, true},
		{"creator completes own plan", creator, services.OpCompleteRitual, plan, true},
		{"unrelated master mason cannot complete", masterMason, services.OpCompleteRitual, plan, false},

		{"creator cancels own plan", creator, services.OpCancelRitual, plan, true},
		{"warden cancels", seniorWarden, services.OpCancelRitual, plan, true},
		{"unrelated master mason cannot cancel", masterMason, services.OpCancelRitual, plan, false},

		{"master mason manages roles", masterMason, services.OpManageRoles, plan, true},
		{"fellow cannot manage roles", fellow, services.OpManageRoles, plan, false},
		{"master mason manages works", masterMason, services.OpManageWorks, plan, true},
		{"fellow cannot manage works", fellow, services.OpManageWorks, plan, false},
		{"master mason creates minutes", masterMason, services.OpCreateMinutes, plan, true},
		{"fellow cannot create minutes", fellow, services.OpCreateMinutes, plan, false},
		{"warden finalizes minutes", seniorWarden, services.OpFinalizeMinutes, plan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.AuthorizeRitualAction(tt.actor, tt.op, tt.plan)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			}
		})
	}
}
