package request

import "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"

type RoleRequest struct {
	Name              string `json:"name" binding:"required,max=40"`
	IsSuper           bool   `json:"is_super"`
	CanAccessAdmin    bool   `json:"can_access_admin"`
	CanReviewPayments bool   `json:"can_review_payments"`
}

func (r RoleRequest) ToRole() entities.Role {
	return entities.Role{
		Name:              r.Name,
		IsSuper:           r.IsSuper,
		CanAccessAdmin:    r.CanAccessAdmin,
		CanReviewPayments: r.CanReviewPayments,
	}
}

type UserRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// UserActiveRequest uses a pointer so an explicit false passes "required".
type UserActiveRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Active *bool  `json:"active" binding:"required"`
}

type AuditLogQuery struct {
	Limit int `form:"limit"`
}
