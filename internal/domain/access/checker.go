package access

import (
	"context"
	"log/slog"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

// Checker evaluates decisions for a concrete user and logs denials.
type Checker struct {
	logger *slog.Logger
}

func NewChecker(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{logger: logger}
}

func (c *Checker) Allowed(ctx context.Context, user *entities.User, action Action, isOwner bool) bool {
	role := entities.RoleUnknown
	userID := ""
	if user != nil {
		role = user.Role
		userID = user.Id
	}

	if Decide(role, action, isOwner) {
		return true
	}
	c.logger.DebugContext(ctx, "access: denied",
		"user", userID,
		"role", role.String(),
		"action", string(action),
		"owner", isOwner)
	return false
}
