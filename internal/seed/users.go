package seed

import (
	"context"
	"fmt"

	"caresmv/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

type adminUserSeed struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AdminUserID anchors the sample events' created_by_id.
const AdminUserID = "8PqfWv3KzYxJm2NtL5cRd7bHsG4eA6wQ"

var adminUsers = []adminUserSeed{
	{ID: AdminUserID, Email: "john@doe.com", Password: "johndoe123", FirstName: "Admin", LastName: "User"},
	{ID: "Tk9XbN2mVp4RwJd6yHzC8sQe3gLa5fKu", Email: "admin@411caresmerrimackvalley.org", Password: "CaresMV2024!", FirstName: "Admin", LastName: "User"},
}

func (s *Seeder) SeedAdminUsers(ctx context.Context) error {
	for _, seed := range adminUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", seed.Email, err)
		}

		user := &types.User{
			ID:           seed.ID,
			Email:        seed.Email,
			PasswordHash: string(hash),
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Role:         types.UserRoleAdmin,
		}

		if err := s.users.UpsertCredentials(ctx, user); err != nil {
			return fmt.Errorf("failed to upsert admin user %s: %w", seed.Email, err)
		}

		s.debug(user)
	}

	return nil
}
