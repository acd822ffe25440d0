package services

import (
	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
)

// RitualOperation enumerates the guarded operations of the ritual engine.
type RitualOperation string

const (
	OpCreateRitual    RitualOperation = "create"
	OpEditRitual      RitualOperation = "edit_core_fields"
	OpApproveRitual   RitualOperation = "approve"
	OpCompleteRitual  RitualOperation = "complete"
	OpCancelRitual    RitualOperation = "cancel"
	OpManageRoles     RitualOperation = "manage_roles"
	OpManageWorks     RitualOperation = "manage_works"
	OpCreateMinutes   RitualOperation = "create_minutes"
	OpFinalizeMinutes RitualOperation = "finalize_minutes"
)

// AuthorizeRitualAction is the single decision point for office-based
// authorization in the ritual engine. It is a pure function with no side
// effects and is consulted before any mutation (fail-closed). State-dependent
// preconditions (draft-only edits, completed-plan minutes) are enforced by the
// services themselves and surface as conflict or precondition errors, not as
// authorization denials.
//
// plan may be nil for OpCreateRitual; every other operation requires the
// loaded plan so creator-based rules can be evaluated.
func AuthorizeRitualAction(actor domain.Actor, op RitualOperation, plan *domain.RitualPlan) error {
	switch op {
	case OpCreateRitual, OpManageRoles, OpManageWorks, OpEditRitual, OpCreateMinutes, OpFinalizeMinutes:
		// Presiding officer, a warden, or any master mason (degree 3).
		if actor.Office.IsPresiding() || actor.Office.IsWarden() || actor.Degree >= 3 {
			return nil
		}
	case OpApproveRitual:
		if actor.Office.IsPresiding() {
			return nil
		}
	case OpCompleteRitual, OpCancelRitual:
		if actor.Office.IsPresiding() || actor.Office.IsWarden() {
			return nil
		}
		if plan != nil && plan.CreatedBy == actor.MemberID {
			return nil
		}
	}
	return apperrors.NewForbiddenError("member " + actor.MemberID + " is not allowed to " + string(op))
}

// transitionOperation maps a requested target status onto the operation the
// authorization gate evaluates for it.
func transitionOperation(target domain.RitualStatus) (RitualOperation, bool) {
	switch target {
	case domain.RitualApproved:
		return OpApproveRitual, true
	case domain.RitualCompleted:
		return OpCompleteRitual, true
	case domain.RitualCancelled:
		return OpCancelRitual, true
	}
	return "", false
}
