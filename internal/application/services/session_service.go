package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
)

// SessionService issues signed session tokens. There is no password check:
// addresses listed as admins get the admin role and everyone else is a user.
type SessionService struct {
	jwtService  *infrastructure.JWTService
	adminEmails []string
	logger      *slog.Logger
}

func NewSessionService(jwtService *infrastructure.JWTService, adminEmails []string, logger *slog.Logger) interfaces.SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	admins := make([]string, 0, len(adminEmails))
	for _, e := range adminEmails {
		admins = append(admins, strings.ToLower(strings.TrimSpace(e)))
	}
	return &SessionService{
		jwtService:  jwtService,
		adminEmails: admins,
		logger:      logger,
	}
}

func (s *SessionService) StartSession(ctx context.Context, sessionCommand *command.StartSessionCommand) (*command.StartSessionCommandResult, error) {
	email := strings.TrimSpace(sessionCommand.Email)
	if err := entities.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: email: %v", ErrInvalidInput, err)
	}

	role := entities.RoleUser
	if slices.Contains(s.adminEmails, strings.ToLower(email)) {
		role = entities.RoleAdmin
	}

	user := entities.NewSessionUser(email, strings.TrimSpace(sessionCommand.Name), role)

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.InfoContext(ctx, "session: started", "user", user.Id, "role", role.String())
	return &command.StartSessionCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// Identify resolves an Authorization header value. Anything missing or
// invalid yields the guest identity.
func (s *SessionService) Identify(ctx context.Context, bearer string) *entities.User {
	raw, ok := strings.CutPrefix(strings.TrimSpace(bearer), "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return entities.Guest()
	}

	user, err := s.jwtService.ParseToken(raw)
	if err != nil {
		s.logger.DebugContext(ctx, "session: rejected token", "error", err)
		return entities.Guest()
	}
	return user
}
