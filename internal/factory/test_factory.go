package factory

import (
	"time"

	"github.com/mcoot/villagegame/internal/config"
	"github.com/mcoot/villagegame/internal/dependencies/mocks"
	"github.com/mcoot/villagegame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App on the given rules with a mocked clock
func NewTestApp(rules config.Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	return &TestApp{
		App:       newWithDependencies(rules, mockClock, testutil.NopLogger()),
		MockClock: mockClock,
	}
}

// SmallRules returns a 3x3 game with a short build budget for tests
func SmallRules() config.Config {
	rules := config.DefaultConfig()
	rules.Rows = 3
	rules.Columns = 3
	rules.BuildLimit = 4
	return rules
}
