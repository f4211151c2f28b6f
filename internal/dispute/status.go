package dispute

import "fmt"

type GameStatus uint8

const (
	GameStatusInProgress     GameStatus = 0
	GameStatusChallengerWins GameStatus = 1
	GameStatusDefenderWins   GameStatus = 2
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusInProgress:
		return "In Progress"
	case GameStatusChallengerWins:
		return "Challenger Wins"
	case GameStatusDefenderWins:
		return "Defender Wins"
	default:
		return fmt.Sprintf("Unknown (%d)", uint8(s))
	}
}

// Game types registered in contracts-bedrock's dispute/lib/Types.sol.
var gameTypeNames = map[uint32]string{
	0:    "Cannon",
	1:    "Permissioned Cannon",
	2:    "Asterisc",
	3:    "Asterisc Kona",
	6:    "OP Succinct",
	254:  "Fast",
	255:  "Alphabet",
	1337: "Kailua",
}

func GameTypeName(gameType uint32) string {
	if name, ok := gameTypeNames[gameType]; ok {
		return name
	}
	return "UNKNOWN"
}
