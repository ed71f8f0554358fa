package mapper

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user.IsGuest() {
		return &common.UserResult{Role: entities.RoleGuest.String(), IsGuest: true}
	}
	return &common.UserResult{
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role.String(),
	}
}
