package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend/fake"
	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/mocks"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing: memory storage,
// mocked clock and random, and the fake backend wired in process
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	fakeSrv := fake.NewWithClock(fakeSecret, mockClock)
	client := backend.NewClientWithHTTP("http://fake-backend", fakeSrv.HTTPClient())

	app := &App{
		Storage:        store,
		Clock:          mockClock,
		Random:         mockRandom,
		SessionManager: session.NewManager(store, mockRandom, logger),
		Backend:        client,
		Fake:           fakeSrv,
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
