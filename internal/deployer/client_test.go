package deployer_test

import (
	"testing"

	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
	"github.com/TheLeggett/Summer-Breeze/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DeviceConnected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   deployer.Result
		expected bool
	}{
		{
			"found_marker_present",
			deployer.Result{Code: 0, Stdout: "Found devices:\n  [1] SC64 at port X"},
			true,
		},
		{
			"zero_exit_without_marker",
			deployer.Result{Code: 0, Stdout: "No devices found"},
			false,
		},
		{
			"nonzero_exit",
			deployer.Result{Code: 1, Stdout: "Found devices:"},
			false,
		},
		{
			"binary_missing",
			deployer.Result{Code: deployer.NotStartedCode, Stderr: "Error: sc64deployer not found"},
			false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			runner := new(mocks.MockRunner)
			runner.On("Run", "list").Return(tt.result)

			client := deployer.NewClient(runner)
			assert.Equal(t, tt.expected, client.DeviceConnected())
		})
	}
}

func TestClient_SDAccessible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   deployer.Result
		expected bool
	}{
		{"pipe_in_output", deployer.Result{Code: 0, Stdout: "f 1M 2025-01-01 00:00:00 | a.z64"}, true},
		{"no_pipe", deployer.Result{Code: 0, Stdout: "card not initialized"}, false},
		{"nonzero_exit", deployer.Result{Code: 2, Stdout: "f 1M | a.z64"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			runner := new(mocks.MockRunner)
			runner.On("Run", "sd", "ls").Return(tt.result)

			client := deployer.NewClient(runner)
			assert.Equal(t, tt.expected, client.SDAccessible())
		})
	}
}

func TestClient_List_RootOmitsPathArgument(t *testing.T) {
	t.Parallel()

	listing := deployer.Result{Code: 0, Stdout: "d ---- 2024-06-01 12:00:00 | /menu"}

	for _, root := range []string{"", "/"} {
		runner := new(mocks.MockRunner)
		runner.On("Run", "sd", "ls").Return(listing)

		client := deployer.NewClient(runner)
		entries := client.List(root)

		require.Len(t, entries, 1, "root %q must list without a path argument", root)
		runner.AssertExpectations(t)
	}
}

func TestClient_List_SubdirectoryPassesPath(t *testing.T) {
	t.Parallel()

	runner := new(mocks.MockRunner)
	runner.On("Run", "sd", "ls", "/menu").
		Return(deployer.Result{Code: 0, Stdout: "f 1M 2025-01-01 00:00:00 | bg.mp3"})

	client := deployer.NewClient(runner)
	entries := client.List("/menu")

	require.Len(t, entries, 1)
	assert.Equal(t, "bg.mp3", entries[0].Name)
	runner.AssertExpectations(t)
}

func TestClient_List_FailureYieldsEmpty(t *testing.T) {
	t.Parallel()

	runner := new(mocks.MockRunner)
	runner.On("Run", "sd", "ls", "/gone").Return(deployer.Result{Code: 1, Stderr: "no such dir"})

	client := deployer.NewClient(runner)
	assert.Empty(t, client.List("/gone"))
}

func TestClient_Upload_ErrorCarriesStderr(t *testing.T) {
	t.Parallel()

	runner := new(mocks.MockRunner)
	runner.On("Run", "sd", "upload", "local/a.z64", "/a.z64").
		Return(deployer.Result{Code: 1, Stderr: "write error\n"})

	client := deployer.NewClient(runner)
	err := client.Upload("local/a.z64", "/a.z64")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write error")
}

func TestClient_Upload_FallsBackToExitCode(t *testing.T) {
	t.Parallel()

	runner := new(mocks.MockRunner)
	runner.On("Run", "sd", "upload", "local/a.z64", "/a.z64").
		Return(deployer.Result{Code: 7})

	client := deployer.NewClient(runner)
	err := client.Upload("local/a.z64", "/a.z64")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 7")
}

func TestClient_Exists(t *testing.T) {
	t.Parallel()

	runner := new(mocks.MockRunner)
	runner.On("Run", "sd", "stat", "/menu/bg.mp3").Return(deployer.Result{Code: 0})
	runner.On("Run", "sd", "stat", "/menu/none.mp3").Return(deployer.Result{Code: 1})

	client := deployer.NewClient(runner)
	assert.True(t, client.Exists("/menu/bg.mp3"))
	assert.False(t, client.Exists("/menu/none.mp3"))
}
