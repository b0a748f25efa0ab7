package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Token tests

func (s *StorageSuite) TestSaveAndGetToken() {
	err := s.storage.SaveToken(s.ctx, "v_1", "jwt-abc")
	s.Require().NoError(err)

	token, err := s.storage.GetToken(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("jwt-abc", token)
}

func (s *StorageSuite) TestGetTokenNotFound() {
	_, err := s.storage.GetToken(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StorageSuite) TestDeleteToken() {
	_ = s.storage.SaveToken(s.ctx, "v_1", "jwt-abc")

	err := s.storage.DeleteToken(s.ctx, "v_1")
	s.Require().NoError(err)

	_, err = s.storage.GetToken(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StorageSuite) TestDeleteTokenIsIdempotent() {
	s.NoError(s.storage.DeleteToken(s.ctx, "never-saved"))
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{ID: "7", FirstName: "Amine", Email: "amine@example.tn"}

	err := s.storage.SaveUser(s.ctx, "v_1", user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("7", retrieved.ID)
	s.Equal("amine@example.tn", retrieved.Email)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUser() {
	_ = s.storage.SaveUser(s.ctx, "v_1", &model.User{ID: "7"})

	err := s.storage.DeleteUser(s.ctx, "v_1")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Draft tests

func (s *StorageSuite) TestSaveAndGetDraft() {
	state := model.NewWizardState()
	state.Draft.Email = "amine@example.tn"
	state.Completed[model.StepBasic] = true

	err := s.storage.SaveDraft(s.ctx, "v_1", state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDraft(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("amine@example.tn", retrieved.Draft.Email)
	s.True(retrieved.Completed[model.StepBasic])
}

func (s *StorageSuite) TestGetDraftNotFound() {
	_, err := s.storage.GetDraft(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

func (s *StorageSuite) TestDeleteDraft() {
	_ = s.storage.SaveDraft(s.ctx, "v_1", model.NewWizardState())

	err := s.storage.DeleteDraft(s.ctx, "v_1")
	s.Require().NoError(err)

	_, err = s.storage.GetDraft(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

// Isolation

func (s *StorageSuite) TestVisitorIsolation() {
	_ = s.storage.SaveToken(s.ctx, "v_1", "jwt-one")
	_ = s.storage.SaveToken(s.ctx, "v_2", "jwt-two")

	s.Require().NoError(s.storage.DeleteToken(s.ctx, "v_1"))

	token, err := s.storage.GetToken(s.ctx, "v_2")
	s.Require().NoError(err)
	s.Equal("jwt-two", token)
}
