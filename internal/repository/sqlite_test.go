//go:build !integration

package repository

import (
	"testing"

	"showcase-portal-backend/internal/testutils"
)

// newBaseTestSuite runs the repository suites against a private in-memory SQLite database
func newBaseTestSuite(t *testing.T) *testutils.BaseTestSuite {
	return testutils.SetupSQLiteTestSuite(t)
}
