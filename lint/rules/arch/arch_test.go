package arch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jawfish/archlint/lint"
)

// lintSource runs a single rule over one file and returns its issues.
func lintSource(t *testing.T, rule lint.Rule, path, source string) []lint.Issue {
	t.Helper()
	linter := lint.New()
	t.Cleanup(linter.Close)
	require.NoError(t, linter.Init(context.Background()))
	linter.AddRule(rule)

	issues, err := linter.Lint(path, []byte(source))
	require.NoError(t, err)
	return issues
}
