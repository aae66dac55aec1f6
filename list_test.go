package bitcore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	require.NoError(t, err)

	require.True(t, sort.StringsAreSorted(ports))
	for _, p := range ports {
		require.NotEmpty(t, p)
	}
}

func TestListPortInfo(t *testing.T) {
	infos, err := ListPortInfo()
	require.NoError(t, err)

	for _, info := range infos {
		require.NotEmpty(t, info.Name)
	}
}

func TestListPortsSnapshotIsFresh(t *testing.T) {
	first, err := ListPorts()
	require.NoError(t, err)

	second, err := ListPorts()
	require.NoError(t, err)

	// Two consecutive scans of an idle system agree; neither call may serve
	// a cached slice of the other.
	require.Equal(t, first, second)
	if len(first) > 0 {
		first[0] = "mutated"
		require.NotEqual(t, first[0], second[0])
	}
}
