package cluster_test

import (
	"bytes"
	"testing"

	clusterpkg "github.com/raykube/rayctl/pkg/cli/cmd/cluster"
	clustererrors "github.com/raykube/rayctl/pkg/svc/repository/cluster/errors"
	"github.com/raykube/rayctl/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_DeletesCluster(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := setupTestCommand(t, &out, &errOut)
	cfgManager := newTestConfigManager(t, "quantum")
	factory := &fakeFactory{repo: &fakeRepository{}}

	err := clusterpkg.HandleDeleteRunE(
		cmd,
		cfgManager,
		clusterpkg.DeleteDeps{Factory: factory},
		"x",
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, factory.repo.deleted)
	assert.Contains(t, out.String(), `✔ deleted cluster "x" from namespace "quantum"`)
}

func TestDeleteCmd_WarnsWhenClusterNotFound(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := setupTestCommand(t, &out, &errOut)
	cfgManager := newTestConfigManager(t, "quantum")

	notFoundErr := &clustererrors.NotFoundError{
		Err: &runner.CommandError{ExitCode: 1, Stderr: "(NotFound)"},
	}
	factory := &fakeFactory{repo: &fakeRepository{err: notFoundErr}}

	err := clusterpkg.HandleDeleteRunE(
		cmd,
		cfgManager,
		clusterpkg.DeleteDeps{Factory: factory},
		"missing",
	)
	require.Error(t, err)
	assert.True(t, clustererrors.IsNotFound(err))
	assert.Contains(t, errOut.String(), `⚠ cluster "missing" not found in namespace "quantum"`)
}

func TestDeleteCmd_PropagatesGenericError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := setupTestCommand(t, &out, &errOut)
	cfgManager := newTestConfigManager(t, "quantum")
	factory := &fakeFactory{repo: &fakeRepository{err: assert.AnError}}

	err := clusterpkg.HandleDeleteRunE(
		cmd,
		cfgManager,
		clusterpkg.DeleteDeps{Factory: factory},
		"x",
	)
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, errOut.String(), "no not-found warning for generic failures")
}
