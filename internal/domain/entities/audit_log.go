package entities

import "time"

const (
	AuditRegistrationCreate  = "registration.create"
	AuditRegistrationApprove = "registration.approve"
	AuditRegistrationReject  = "registration.reject"
	AuditProofUpload         = "proof.upload"
	AuditCardPayment         = "payment.card"
	AuditRoleCreate          = "role.create"
	AuditRoleGrant           = "role.grant"
	AuditRoleRevoke          = "role.revoke"
	AuditUserActive          = "user.active"
)

// AuditLog records an action taken by a user.
type AuditLog struct {
	ID          string    `json:"id"`
	ActorUserID string    `json:"actor_user_id,omitempty"`
	Action      string    `json:"action"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
