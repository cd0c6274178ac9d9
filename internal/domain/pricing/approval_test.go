package pricing

import (
	"testing"

	"rera_quotation/internal/domain/entities"
)

func TestRequiredApprovalLevel(t *testing.T) {
	tests := []struct {
		name     string
		discount float64
		expect   entities.ApprovalLevel
	}{
		{"no discount", 0, entities.ApprovalLevelAuto},
		{"just below manager tier", 9.99, entities.ApprovalLevelAuto},
		{"exactly 10 percent", 10.0, entities.ApprovalLevelManager},
		{"mid manager tier", 15.5, entities.ApprovalLevelManager},
		{"exactly 20 percent", 20.0, entities.ApprovalLevelSeniorManager},
		{"just below director tier", 29.999, entities.ApprovalLevelSeniorManager},
		{"exactly 30 percent", 30.0, entities.ApprovalLevelDirector},
		{"deep discount", 75.0, entities.ApprovalLevelDirector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredApprovalLevel(tt.discount)
			if got != tt.expect {
				t.Errorf("RequiredApprovalLevel(%v) = %s, want %s", tt.discount, got, tt.expect)
			}
		})
	}
}

func TestUserRoleCanApprove(t *testing.T) {
	tests := []struct {
		name   string
		role   entities.UserRole
		level  entities.ApprovalLevel
		expect bool
	}{
		{"manager clears manager", entities.UserRoleManager, entities.ApprovalLevelManager, true},
		{"manager blocked from senior tier", entities.UserRoleManager, entities.ApprovalLevelSeniorManager, false},
		{"senior manager clears manager", entities.UserRoleSeniorManager, entities.ApprovalLevelManager, true},
		{"senior manager blocked from director tier", entities.UserRoleSeniorManager, entities.ApprovalLevelDirector, false},
		{"director clears director", entities.UserRoleDirector, entities.ApprovalLevelDirector, true},
		{"admin clears director", entities.UserRoleAdmin, entities.ApprovalLevelDirector, true},
		{"admin clears auto approved", entities.UserRoleAdmin, entities.ApprovalLevelAuto, true},
		{"unknown role blocked from manager tier", entities.UserRoleUnknown, entities.ApprovalLevelManager, false},
		{"unknown role clears auto approved", entities.UserRoleUnknown, entities.ApprovalLevelAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.role.CanApprove(tt.level)
			if got != tt.expect {
				t.Errorf("%s.CanApprove(%s) = %v, want %v", tt.role, tt.level, got, tt.expect)
			}
		})
	}
}
