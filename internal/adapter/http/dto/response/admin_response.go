package response

import "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

func FromRoles(roles []entities.Role) ListResponse[entities.Role] {
	return NewList(roles)
}

func FromAuditLogs(logs []entities.AuditLog) ListResponse[entities.AuditLog] {
	return NewList(logs)
}
