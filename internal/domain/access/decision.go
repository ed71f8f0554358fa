// Package access decides which actions a role may perform on recipes and
// related resources.
package access

import (
	"errors"
	"strings"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

var ErrUnknownAction = errors.New("unknown action")

type Action string

const (
	ActionView      Action = "view"
	ActionCreate    Action = "create"
	ActionEdit      Action = "edit"
	ActionDelete    Action = "delete"
	ActionManage    Action = "manage"
	ActionDashboard Action = "dashboard"
)

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionView, ActionCreate, ActionEdit, ActionDelete, ActionManage, ActionDashboard:
		return a, nil
	}
	return "", ErrUnknownAction
}

// Decide reports whether role may perform action. isOwner only matters for
// edit and delete. Unrecognised roles and actions are always denied.
func Decide(role entities.Role, action Action, isOwner bool) bool {
	if !role.Valid() {
		return false
	}

	switch action {
	case ActionView:
		return true
	case ActionCreate, ActionDashboard:
		return role == entities.RoleAdmin || role == entities.RoleUser
	case ActionEdit, ActionDelete:
		return role == entities.RoleAdmin || isOwner
	case ActionManage:
		return role == entities.RoleAdmin
	default:
		return false
	}
}

// Guard returns content when the decision allows the action and fallback
// otherwise.
func Guard[T any](role entities.Role, action Action, isOwner bool, content, fallback T) T {
	if Decide(role, action, isOwner) {
		return content
	}
	return fallback
}
