package backend_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend/fake"
	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/mocks"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

type ClientSuite struct {
	suite.Suite
	fake   *fake.Server
	server *httptest.Server
	client *backend.Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.fake = fake.New("test-secret")
	s.server = httptest.NewServer(s.fake)
	s.client = backend.NewClient(s.server.URL)
	s.ctx = context.Background()
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) seedAdmin() string {
	s.fake.SeedUser(model.User{
		FirstName: "Leila",
		Email:     "admin@ftb.tn",
		IsActive:  true,
	}, "admin123", model.RoleAdmin)

	auth, err := s.client.Login(s.ctx, "admin@ftb.tn", "admin123")
	s.Require().NoError(err)
	return auth.AccessToken
}

// Login

func (s *ClientSuite) TestLoginWithEmail() {
	s.fake.SeedUser(model.User{Email: "amine@example.tn", IsActive: true}, "secret1", model.RolePlayer)

	auth, err := s.client.Login(s.ctx, "amine@example.tn", "secret1")
	s.Require().NoError(err)
	s.NotEmpty(auth.AccessToken)
	s.Equal("amine@example.tn", auth.User.Email)
}

func (s *ClientSuite) TestLoginWithLicenseNumber() {
	s.fake.SeedUser(model.User{
		Email:    "amine@example.tn",
		IsActive: true,
		License:  &model.License{Number: "TN-4471"},
	}, "secret1", model.RolePlayer)

	auth, err := s.client.Login(s.ctx, "TN-4471", "secret1")
	s.Require().NoError(err)
	s.Equal("amine@example.tn", auth.User.Email)
}

func (s *ClientSuite) TestLoginWrongPassword() {
	s.fake.SeedUser(model.User{Email: "amine@example.tn"}, "secret1", model.RolePlayer)

	_, err := s.client.Login(s.ctx, "amine@example.tn", "wrong")
	s.Require().Error(err)
	s.ErrorIs(err, backend.ErrUnauthorized)

	var apiErr *backend.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(401, apiErr.Status)
	s.Equal("Invalid credentials", apiErr.Message)
}

// Registration

func (s *ClientSuite) registerPayload() *backend.RegisterPayload {
	return &backend.RegisterPayload{
		FirstName: "Amine",
		LastName:  "Ben Salah",
		Email:     "amine@example.tn",
		Password:  "secret1",
		City:      "Tunis",
		Cin:       12345678,
		Gender:    "male",
		Phone:     "+21622345678",
		BirthDate: "1990-04-12",
		Address:   "12 Avenue Habib Bourguiba",
	}
}

func (s *ClientSuite) TestRegisterCreatesPendingPlayer() {
	auth, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	s.NotEmpty(auth.AccessToken)
	s.Equal("Amine", auth.User.FirstName)
	s.Equal(12345678, auth.User.Cin)
	s.True(auth.User.Role.Is(model.RolePlayer))
	// New members wait for admin approval
	s.False(auth.User.IsActive)
}

func (s *ClientSuite) TestRegisterWithLicenseNumber() {
	payload := s.registerPayload()
	payload.LicenseNumber = "TN-4471"

	auth, err := s.client.Register(s.ctx, payload)
	s.Require().NoError(err)
	s.Require().NotNil(auth.User.License)
	s.Equal("TN-4471", auth.User.License.Number)
}

func (s *ClientSuite) TestRegisterDuplicateEmail() {
	_, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	_, err = s.client.Register(s.ctx, s.registerPayload())
	s.Require().Error(err)

	var apiErr *backend.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(409, apiErr.Status)
	s.Equal("Email already registered", apiErr.Message)
}

// Profile

func (s *ClientSuite) TestProfileRoundTrip() {
	auth, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	user, err := s.client.Profile(s.ctx, auth.AccessToken)
	s.Require().NoError(err)
	s.Equal(auth.User.ID, user.ID)
}

func (s *ClientSuite) TestProfileInvalidToken() {
	_, err := s.client.Profile(s.ctx, "garbage")
	s.ErrorIs(err, backend.ErrUnauthorized)
}

func (s *ClientSuite) TestProfileExpiredToken() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	fakeSrv := fake.NewWithClock("test-secret", clk)
	client := backend.NewClientWithHTTP("http://fake-backend", fakeSrv.HTTPClient())

	fakeSrv.SeedUser(model.User{Email: "amine@example.tn", IsActive: true}, "secret1", model.RolePlayer)
	auth, err := client.Login(s.ctx, "amine@example.tn", "secret1")
	s.Require().NoError(err)

	// Tokens are valid for 24 hours
	clk.Advance(23 * time.Hour)
	_, err = client.Profile(s.ctx, auth.AccessToken)
	s.Require().NoError(err)

	clk.Advance(2 * time.Hour)
	_, err = client.Profile(s.ctx, auth.AccessToken)
	s.ErrorIs(err, backend.ErrUnauthorized)
}

// Admin operations

func (s *ClientSuite) TestAdminEndpointsRejectPlayers() {
	auth, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	_, err = s.client.Users(s.ctx, auth.AccessToken)
	s.Require().Error(err)

	var apiErr *backend.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(403, apiErr.Status)
}

func (s *ClientSuite) TestApproveActivatesPendingUser() {
	adminToken := s.seedAdmin()

	auth, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	pending, err := s.client.PendingUsers(s.ctx, adminToken)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	s.Require().NoError(s.client.ApproveUser(s.ctx, adminToken, auth.User.ID))

	user, err := s.client.Profile(s.ctx, auth.AccessToken)
	s.Require().NoError(err)
	s.True(user.IsActive)

	pending, err = s.client.PendingUsers(s.ctx, adminToken)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *ClientSuite) TestRejectRemovesAccount() {
	adminToken := s.seedAdmin()

	auth, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	s.Require().NoError(s.client.RejectUser(s.ctx, adminToken, auth.User.ID))

	// The rejected member's token no longer resolves
	_, err = s.client.Profile(s.ctx, auth.AccessToken)
	s.ErrorIs(err, backend.ErrUnauthorized)
}

func (s *ClientSuite) TestUserStats() {
	adminToken := s.seedAdmin()

	_, err := s.client.Register(s.ctx, s.registerPayload())
	s.Require().NoError(err)

	stats, err := s.client.UserStats(s.ctx, adminToken)
	s.Require().NoError(err)
	s.Equal(2, stats.TotalUsers)
	s.Equal(1, stats.ActiveUsers)
	s.Equal(1, stats.PendingApproval)
	s.Equal(1, stats.Admins)
}

// Content operations

func (s *ClientSuite) TestTournamentLifecycle() {
	adminToken := s.seedAdmin()

	created, err := s.client.CreateTournament(s.ctx, adminToken, &model.Tournament{
		Name:      "Open de Tunis",
		Location:  "Tunis",
		StartDate: "2026-03-14",
		EndDate:   "2026-03-16",
		Status:    "upcoming",
	})
	s.Require().NoError(err)
	s.NotZero(created.ID)

	created.Status = "ongoing"
	updated, err := s.client.UpdateTournament(s.ctx, adminToken, created.ID, created)
	s.Require().NoError(err)
	s.Equal("ongoing", updated.Status)

	// Listing needs no token
	listed, err := s.client.Tournaments(s.ctx, "")
	s.Require().NoError(err)
	s.Len(listed, 1)

	s.Require().NoError(s.client.DeleteTournament(s.ctx, adminToken, created.ID))

	listed, err = s.client.Tournaments(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *ClientSuite) TestNewsLifecycle() {
	adminToken := s.seedAdmin()

	created, err := s.client.CreateNews(s.ctx, adminToken, &model.News{
		Title:       "Season opener",
		Content:     "The season opens in March.",
		PublishedAt: "2026-01-05",
	})
	s.Require().NoError(err)
	s.NotZero(created.ID)

	listed, err := s.client.News(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("Season opener", listed[0].Title)

	s.Require().NoError(s.client.DeleteNews(s.ctx, adminToken, created.ID))
}
