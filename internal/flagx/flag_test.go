package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "localhost:3000", "-x", "junk"}, []string{"-a"})
	require.Equal(t, []string{"-a", "localhost:3000"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-a=addr", "-b=nope"}, []string{"--config", "-a"})
	require.Equal(t, []string{"--config=conf.json", "-a=addr"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// -a has no value because the next token is another flag
	got := FilterArgs([]string{"-a", "-i", "5"}, []string{"-a", "-i"})
	require.Equal(t, []string{"-a", "-i", "5"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.NotNil(t, got)
	require.Len(t, got, 0)
}
