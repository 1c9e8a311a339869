package factory

import (
	"time"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/dependencies/mocks"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/oracle"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/memory"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockMetrics *metrics.Mock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	mockMetrics := metrics.NewMock()
	staticOracle := &oracle.Static{Reply: "Pick a balanced side and keep some budget spare."}

	app := newWithDependencies(store, mockClock, mockMetrics, staticOracle, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockMetrics: mockMetrics,
	}
}
