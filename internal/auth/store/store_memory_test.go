package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"charity/internal/auth/models"
	"charity/pkg/platform/sentinel"
	"charity/pkg/requestcontext"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func (s *InMemoryStoreSuite) newUser(username string) *models.User {
	u := &models.User{Username: username, PasswordHash: "hash", Role: requestcontext.RoleCharity, IsActive: true, CreatedAt: time.Now()}
	s.Require().NoError(s.store.Create(context.Background(), u))
	return u
}

func (s *InMemoryStoreSuite) TestLookup() {
	ctx := context.Background()
	u := s.newUser("mehr")

	s.Run("by id", func() {
		found, err := s.store.FindByID(ctx, u.ID)
		s.Require().NoError(err)
		s.Equal("mehr", found.Username)
	})

	s.Run("by username", func() {
		found, err := s.store.FindByUsername(ctx, "mehr")
		s.Require().NoError(err)
		s.Equal(u.ID, found.ID)
	})

	s.Run("missing", func() {
		_, err := s.store.FindByUsername(ctx, "nobody")
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindByID(ctx, 999)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestUsernameUniqueness() {
	ctx := context.Background()
	first := s.newUser("mehr")
	second := s.newUser("omid")

	err := s.store.Create(ctx, &models.User{Username: "mehr"})
	s.ErrorIs(err, sentinel.ErrConflict)

	second.Username = "mehr"
	s.ErrorIs(s.store.Update(ctx, second), sentinel.ErrConflict)

	first.Username = "mehr-new"
	s.Require().NoError(s.store.Update(ctx, first))
	taken, err := s.store.UsernameTaken(ctx, "mehr")
	s.Require().NoError(err)
	s.False(taken)
}
