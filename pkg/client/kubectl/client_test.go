package kubectl_test

import (
	"context"
	"testing"

	"github.com/raykube/rayctl/pkg/client/kubectl"
	"github.com/raykube/rayctl/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the argument vectors it receives and returns canned
// results.
type fakeRunner struct {
	calls  [][]string
	result runner.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, args []string) (runner.Result, error) {
	f.calls = append(f.calls, args)

	return f.result, f.err
}

func TestClient_GetRayClusterNames(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{result: runner.Result{Stdout: "a\nb\n"}}
	client := kubectl.NewClient(fake)

	out, err := client.GetRayClusterNames(context.Background(), "quantum")
	require.NoError(t, err)

	assert.Equal(t, "a\nb\n", out)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		"kubectl",
		"-n", "quantum",
		"get", "rayclusters",
		"--no-headers",
		"-o", "custom-columns=NAME:metadata.name",
	}, fake.calls[0])
}

func TestClient_GetServiceEndpoint(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{result: runner.Result{Stdout: "10.0.0.5   8080\n"}}
	client := kubectl.NewClient(fake)

	out, err := client.GetServiceEndpoint(context.Background(), "quantum", "x-ray-head")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5   8080\n", out)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		"kubectl",
		"-n", "quantum",
		"get", "service", "x-ray-head",
		"-o", "custom-columns=IP:.spec.clusterIP,PORT:.spec.ports[0].targetPort",
		"--no-headers",
	}, fake.calls[0])
}

func TestClient_DeleteRayCluster(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	client := kubectl.NewClient(fake)

	err := client.DeleteRayCluster(context.Background(), "quantum", "x")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		"kubectl",
		"-n", "quantum",
		"delete", "rayclusters", "x",
	}, fake.calls[0])
}

func TestClient_PropagatesCommandError(t *testing.T) {
	t.Parallel()

	cmdErr := &runner.CommandError{ExitCode: 1, Stderr: "connection refused"}
	fake := &fakeRunner{err: cmdErr}
	client := kubectl.NewClient(fake)

	_, err := client.GetRayClusterNames(context.Background(), "quantum")
	require.ErrorAs(t, err, &cmdErr)
}

func TestNewClientWithBinary_CustomBinary(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	client := kubectl.NewClientWithBinary("oc", fake)

	err := client.DeleteRayCluster(context.Background(), "quantum", "x")
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "oc", fake.calls[0][0])
}

func TestNewClientWithBinary_EmptyFallsBackToDefault(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	client := kubectl.NewClientWithBinary("", fake)

	err := client.DeleteRayCluster(context.Background(), "quantum", "x")
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "kubectl", fake.calls[0][0])
}
