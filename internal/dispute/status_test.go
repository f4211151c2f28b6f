package dispute

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStatusString(t *testing.T) {
	require.Equal(t, "In Progress", GameStatusInProgress.String())
	require.Equal(t, "Challenger Wins", GameStatusChallengerWins.String())
	require.Equal(t, "Defender Wins", GameStatusDefenderWins.String())
	require.Equal(t, "Unknown (7)", GameStatus(7).String())
}

func TestGameTypeName(t *testing.T) {
	require.Equal(t, "Cannon", GameTypeName(0))
	require.Equal(t, "Permissioned Cannon", GameTypeName(1))
	require.Equal(t, "Kailua", GameTypeName(1337))
	require.Equal(t, "UNKNOWN", GameTypeName(42))
}

func TestGameSummaryStatus(t *testing.T) {
	var g GameSummary

	_, ok := g.Status()
	require.False(t, ok)
	require.Equal(t, "Unknown", g.StatusText())

	g.ResolveStatus(GameStatusDefenderWins)
	status, ok := g.Status()
	require.True(t, ok)
	require.Equal(t, GameStatusDefenderWins, status)

	g.ResolveStatus(GameStatusInProgress)
	status, ok = g.Status()
	require.True(t, ok)
	require.Equal(t, GameStatusInProgress, status)
}
