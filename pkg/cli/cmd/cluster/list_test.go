package cluster_test

import (
	"bytes"
	"testing"

	clusterpkg "github.com/raykube/rayctl/pkg/cli/cmd/cluster"
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_DisplaysClusters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		clusters       []clusterrepository.Cluster
		expectedOutput string
	}{
		{
			name:           "no clusters found",
			clusters:       []clusterrepository.Cluster{},
			expectedOutput: "► no clusters found in namespace \"quantum\"",
		},
		{
			name:           "single cluster",
			clusters:       []clusterrepository.Cluster{{Name: "test-cluster"}},
			expectedOutput: "test-cluster",
		},
		{
			name: "multiple clusters",
			clusters: []clusterrepository.Cluster{
				{Name: "cluster1"}, {Name: "cluster2"},
			},
			expectedOutput: "cluster1, cluster2",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer

			cmd := setupTestCommand(t, &out, &errOut)
			cfgManager := newTestConfigManager(t, "quantum")
			factory := &fakeFactory{repo: &fakeRepository{clusters: testCase.clusters}}

			err := clusterpkg.HandleListRunE(cmd, cfgManager, clusterpkg.ListDeps{Factory: factory})
			require.NoError(t, err)

			assert.Contains(t, out.String(), testCase.expectedOutput)
		})
	}
}

func TestListCmd_CreatesRepositoryFromLoadedConfig(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := setupTestCommand(t, &out, &errOut)
	cfgManager := newTestConfigManager(t, "quantum")
	factory := &fakeFactory{repo: &fakeRepository{}}

	err := clusterpkg.HandleListRunE(cmd, cfgManager, clusterpkg.ListDeps{Factory: factory})
	require.NoError(t, err)

	require.NotNil(t, factory.lastCfg)
	assert.Equal(t, "quantum", factory.lastCfg.Namespace)
	assert.Equal(t, 1, factory.repo.listCalls)
}

func TestListCmd_PropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := setupTestCommand(t, &out, &errOut)
	cfgManager := newTestConfigManager(t, "quantum")
	factory := &fakeFactory{repo: &fakeRepository{err: assert.AnError}}

	err := clusterpkg.HandleListRunE(cmd, cfgManager, clusterpkg.ListDeps{Factory: factory})
	require.ErrorIs(t, err, assert.AnError)
}
