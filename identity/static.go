package identity

import (
	"context"
	"errors"
	"sync"
)

// Static is an in-memory Provider used in tests and local development.
type Static struct {
	mu    sync.Mutex
	roles map[string]string

	// FailGetRole / FailSetRole force the corresponding call to error,
	// for exercising lookup-failure and role-sync-abort policies.
	FailGetRole bool
	FailSetRole bool
}

func NewStatic(roles map[string]string) *Static {
	if roles == nil {
		roles = map[string]string{}
	}
	return &Static{roles: roles}
}

func (s *Static) GetRole(ctx context.Context, identityID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailGetRole {
		return "", errors.New("identity provider unavailable")
	}
	role, ok := s.roles[identityID]
	if !ok {
		return RoleUser, nil
	}
	return role, nil
}

func (s *Static) SetRole(ctx context.Context, identityID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSetRole {
		return errors.New("identity provider unavailable")
	}
	s.roles[identityID] = role
	return nil
}

// Role returns the stored role without the Provider error contract.
func (s *Static) Role(identityID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles[identityID]
}
