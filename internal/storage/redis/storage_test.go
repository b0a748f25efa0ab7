package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	cfg.DraftTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
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

func (s *StorageSuite) TestTokenTTL() {
	_ = s.storage.SaveToken(s.ctx, "v_1", "jwt-abc")

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetToken(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:        "7",
		FirstName: "Amine",
		Email:     "amine@example.tn",
		Role:      model.Role{Title: model.RolePlayer},
		License:   &model.License{Number: "TN-4471"},
	}

	err := s.storage.SaveUser(s.ctx, "v_1", user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("7", retrieved.ID)
	s.Equal("amine@example.tn", retrieved.Email)
	s.Require().NotNil(retrieved.License)
	s.Equal("TN-4471", retrieved.License.Number)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserCorruptedRecord() {
	s.Require().NoError(s.mini.Set("bridgefront:user:v_1", "{not json"))

	_, err := s.storage.GetUser(s.ctx, "v_1")
	s.Error(err)
	s.NotErrorIs(err, model.ErrUserNotFound)
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
	state.Draft.FirstName = "Amine"
	state.Current = model.StepDetails
	state.Completed[model.StepBasic] = true

	err := s.storage.SaveDraft(s.ctx, "v_1", state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDraft(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("Amine", retrieved.Draft.FirstName)
	s.Equal(model.StepDetails, retrieved.Current)
	s.True(retrieved.Completed[model.StepBasic])
}

func (s *StorageSuite) TestGetDraftNotFound() {
	_, err := s.storage.GetDraft(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

func (s *StorageSuite) TestDraftTTL() {
	_ = s.storage.SaveDraft(s.ctx, "v_1", model.NewWizardState())

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetDraft(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

func (s *StorageSuite) TestDeleteDraft() {
	_ = s.storage.SaveDraft(s.ctx, "v_1", model.NewWizardState())

	err := s.storage.DeleteDraft(s.ctx, "v_1")
	s.Require().NoError(err)

	_, err = s.storage.GetDraft(s.ctx, "v_1")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

// Visitors are isolated from each other

func (s *StorageSuite) TestVisitorIsolation() {
	_ = s.storage.SaveToken(s.ctx, "v_1", "jwt-one")
	_ = s.storage.SaveToken(s.ctx, "v_2", "jwt-two")

	token, err := s.storage.GetToken(s.ctx, "v_1")
	s.Require().NoError(err)
	s.Equal("jwt-one", token)

	s.Require().NoError(s.storage.DeleteToken(s.ctx, "v_1"))

	token, err = s.storage.GetToken(s.ctx, "v_2")
	s.Require().NoError(err)
	s.Equal("jwt-two", token)
}
