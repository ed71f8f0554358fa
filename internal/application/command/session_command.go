package command

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

type StartSessionCommand struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type StartSessionCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
