package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "0.4.0"
	commit = "9f3c2e1"
	date = "2026-03-14"

	stdout, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "toastlab 0.4.0\ncommit: 9f3c2e1\nbuilt: 2026-03-14\n", stdout)
}
