package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/ewhitmore/scorepad-go/internal/dependencies/mocks"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
	"github.com/ewhitmore/scorepad-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, access.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueTableCodes queues codes for table creation in order
func (t *TestApp) QueueTableCodes(codes ...string) {
	t.MockRandom.QueueString(codes...)
}
