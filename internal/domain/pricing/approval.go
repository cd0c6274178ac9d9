package pricing

import "rera_quotation/internal/domain/entities"

// RequiredApprovalLevel maps an aggregate discount percentage to the minimum
// authority tier that must sign off. Tier boundaries are inclusive at the
// lower edge: exactly 10% already needs a manager.
func RequiredApprovalLevel(discountPercentage float64) entities.ApprovalLevel {
	switch {
	case discountPercentage >= 30:
		return entities.ApprovalLevelDirector
	case discountPercentage >= 20:
		return entities.ApprovalLevelSeniorManager
	case discountPercentage >= 10:
		return entities.ApprovalLevelManager
	default:
		return entities.ApprovalLevelAuto
	}
}
