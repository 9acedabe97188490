//go:build integration

// Package integration provides BDD integration tests using Godog/Cucumber.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/lifetrack/backend/test/integration/steps"
)

// TestFeatures runs every feature under features/ against a hermetic server:
// in-memory sqlite behind gorm, miniredis behind the key-value store.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      godogFormat(),
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1, // scenarios share the sqlite singleton
		Strict:      true,
		Tags:        os.Getenv("GODOG_TAGS"),
		TestingT:    t,
	}

	suite := godog.TestSuite{
		Name:                 "lifetrack-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func godogFormat() string {
	if format := os.Getenv("GODOG_FORMAT"); format != "" {
		return format
	}
	return "pretty"
}
