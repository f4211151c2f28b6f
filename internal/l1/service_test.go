package l1

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math/big"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/contracts/contractstest"
	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/require"
)

var (
	_ client = (*contractstest.Backend)(nil)
	_ client = (*ethclient.Client)(nil)
)

const totalGames = 45

var (
	sysCfgAddr  = common.HexToAddress("0x229047fed2591dbec1eF1118d64F7aF3dB9EB290")
	factoryAddr = common.HexToAddress("0xe5965Ab5962eDc7477C8520243A95517CD252fA9")
	portalAddr  = common.HexToAddress("0xbEb5Fc579115071764c7423A4f12eDde41f106Ed")
	bridgeAddr  = common.HexToAddress("0x99C9fc46f92E8a1c0deC1b1747d010903E884bE1")
	xdmAddr     = common.HexToAddress("0x25ace71c97B33Cc4729CF772ae268934F7ab5fA1")

	testChain = chains.Chain{Name: "op-mainnet", DisplayName: "OP Mainnet"}

	testFetch   = configs.Fetch{Concurrency: 4, Timeout: 5 * time.Second}
	narrowFetch = configs.Fetch{Concurrency: 2, Timeout: 5 * time.Second}
)

func gameAddress(index uint64) common.Address {
	return common.BigToAddress(new(big.Int).SetUint64(0x1000 + index))
}

func gameID(gameType uint32, timestamp uint64, addr common.Address) [32]byte {
	var id [32]byte
	binary.BigEndian.PutUint32(id[0:4], gameType)
	binary.BigEndian.PutUint64(id[4:12], timestamp)
	copy(id[12:], addr.Bytes())
	return id
}

func loadedRegistry() chains.RegistryInfo {
	return chains.Loaded(&chains.SuperchainConfig{
		Name:      "OP Mainnet",
		Addresses: map[string]string{chains.SystemConfigProxy: sysCfgAddr.Hex()},
	})
}

// newBackend serves a factory with totalGames games. Game 40's status read reverts.
func newBackend(t *testing.T) *contractstest.Backend {
	t.Helper()

	backend := contractstest.New()
	backend.Return(sysCfgAddr, contracts.SystemConfigABI, "disputeGameFactory", factoryAddr)
	backend.Return(sysCfgAddr, contracts.SystemConfigABI, "optimismPortal", portalAddr)
	backend.Return(sysCfgAddr, contracts.SystemConfigABI, "l1StandardBridge", bridgeAddr)
	backend.Return(sysCfgAddr, contracts.SystemConfigABI, "l1CrossDomainMessenger", xdmAddr)

	backend.Return(factoryAddr, contracts.DisputeGameFactoryABI, "gameCount", big.NewInt(totalGames))
	backend.Handle(factoryAddr, contracts.DisputeGameFactoryABI, "findLatestGames", func(args []any) ([]any, error) {
		start := args[1].(*big.Int).Uint64()
		n := args[2].(*big.Int).Uint64()

		var out []contracts.GameSearchResult
		for i := start; len(out) < int(n); i-- {
			out = append(out, contracts.GameSearchResult{
				Index:     new(big.Int).SetUint64(i),
				Metadata:  gameID(0, 1_700_000_000+i, gameAddress(i)),
				Timestamp: 1_700_000_000 + i,
				RootClaim: [32]byte{byte(i)},
				ExtraData: []byte{},
			})
			if i == 0 {
				break
			}
		}
		return []any{out}, nil
	})

	for i := uint64(0); i < totalGames; i++ {
		if i == 40 {
			backend.Revert(gameAddress(i), contracts.FaultDisputeGameABI, "status")
			continue
		}
		backend.Return(gameAddress(i), contracts.FaultDisputeGameABI, "status", uint8(i%3))
	}

	return backend
}

func TestGamesFirstPage(t *testing.T) {
	s := NewService(newBackend(t), testChain, loadedRegistry(), testFetch)

	var list dispute.GameList
	view, err := s.Games(context.Background(), &list, url.Values{})
	require.NoError(t, err)

	require.Equal(t, factoryAddr, view.Factory)
	require.Equal(t, 1, view.Page)
	require.Equal(t, uint64(3), view.TotalPages)
	require.Len(t, view.Games, 20)
	require.Equal(t, int64(44), view.Games[0].Index.Int64())
	require.Equal(t, gameAddress(44), view.Games[0].Address)
	require.Equal(t, "Cannon", view.Games[0].TypeName)
	require.Equal(t, int64(25), view.Games[19].Index.Int64())

	require.Equal(t, dispute.GameStatus(44%3).String(), view.Games[0].Status)
	require.Equal(t, "Unknown", view.Games[4].Status)
	require.Equal(t, 1, view.UnresolvedStatuses)

	require.Nil(t, view.Prev)
	require.NotNil(t, view.Next)
	require.Equal(t, 2, view.Next.Page)
	require.Equal(t, "page=2", view.Next.Query)
}

func TestGamesLastPage(t *testing.T) {
	s := NewService(newBackend(t), testChain, loadedRegistry(), testFetch)

	var list dispute.GameList
	view, err := s.Games(context.Background(), &list, url.Values{dispute.PageParam: {"3"}})
	require.NoError(t, err)

	require.Len(t, view.Games, 5)
	require.Equal(t, int64(4), view.Games[0].Index.Int64())
	require.Equal(t, int64(0), view.Games[4].Index.Int64())
	require.Zero(t, view.UnresolvedStatuses)
	require.Nil(t, view.Next)
	require.Equal(t, 2, view.Prev.Page)
}

func TestGamesPastEnd(t *testing.T) {
	backend := newBackend(t)
	s := NewService(backend, testChain, loadedRegistry(), testFetch)

	var list dispute.GameList
	view, err := s.Games(context.Background(), &list, url.Values{dispute.PageParam: {"9"}})
	require.NoError(t, err)
	require.Empty(t, view.Games)
	require.Zero(t, backend.Calls("findLatestGames"))
}

func TestGamesResetsListOnFactoryChange(t *testing.T) {
	s := NewService(newBackend(t), testChain, loadedRegistry(), testFetch)

	list := dispute.GameList{
		Factory: common.HexToAddress("0x01"),
		Page:    dispute.NewPage(7, 500),
		Games:   []dispute.GameSummary{{Type: 9}},
	}

	_, err := s.Games(context.Background(), &list, url.Values{})
	require.NoError(t, err)
	require.Equal(t, factoryAddr, list.Factory)
	require.Equal(t, uint64(totalGames), list.Page.Total)
	require.Equal(t, 1, list.Page.Current)
	require.Len(t, list.Games, 20)
}

func TestGamesRequiresRegistry(t *testing.T) {
	s := NewService(newBackend(t), testChain, chains.RegistryInfo{}, testFetch)

	var list dispute.GameList
	_, err := s.Games(context.Background(), &list, url.Values{})
	require.ErrorIs(t, err, chains.ErrRegistryNotLoaded)
}

func TestBrowse(t *testing.T) {
	backend := newBackend(t)
	s := NewService(backend, testChain, loadedRegistry(), testFetch)

	var (
		list dispute.GameList
		out  bytes.Buffer
	)
	in := strings.NewReader("n\nn\nn\np\nq\n")

	err := browse(context.Background(), s, render.New(&out, configs.OutputJSON), &list, url.Values{}, in, &out)
	require.NoError(t, err)

	require.Equal(t, 2, list.Page.Current)
	require.Equal(t, 5, backend.Calls("gameCount"))
}

const claimCount = 4

func newGameBackend(t *testing.T, game common.Address) *contractstest.Backend {
	t.Helper()

	gameABI := contracts.FaultDisputeGameABI
	backend := contractstest.New()

	backend.Return(game, gameABI, "createdAt", uint64(1_700_000_000))
	backend.Return(game, gameABI, "gameType", uint32(0))
	backend.Return(game, gameABI, "rootClaim", [32]byte{0xaa})
	backend.Return(game, gameABI, "status", uint8(1))
	backend.Return(game, gameABI, "l1Head", [32]byte{0xbb})
	backend.Return(game, gameABI, "gameCreator", common.HexToAddress("0xc0ffee"))
	backend.Return(game, gameABI, "l2BlockNumber", big.NewInt(120_000_000))
	backend.Return(game, gameABI, "l2ChainId", big.NewInt(10))
	backend.Return(game, gameABI, "claimDataLen", big.NewInt(claimCount))

	parents := []uint32{dispute.RootParentIndex, 0, 1, 0}
	backend.Handle(game, gameABI, "claimData", func(args []any) ([]any, error) {
		i := args[0].(*big.Int).Uint64()
		if i == 1 {
			return nil, contractstest.ErrReverted
		}
		counteredBy := common.Address{}
		if i == 0 {
			counteredBy = common.HexToAddress("0xdead")
		}
		return []any{
			parents[i],
			counteredBy,
			common.HexToAddress("0xbeef"),
			big.NewInt(80_000_000_000_000_000),
			[32]byte{byte(i)},
			big.NewInt(int64(1 << i)),
			dispute.PackClock(i*60, 1_700_000_000+i),
		}, nil
	})

	return backend
}

func TestGame(t *testing.T) {
	game := gameAddress(7)
	s := NewService(newGameBackend(t, game), testChain, chains.RegistryInfo{}, narrowFetch)

	view, err := s.Game(context.Background(), game)
	require.NoError(t, err)

	require.NotNil(t, view.Details)
	require.Empty(t, view.DetailsError)
	require.Equal(t, "Challenger Wins", view.Details.StatusText)
	require.Equal(t, "Cannon", view.Details.GameTypeName)
	require.Equal(t, uint64(claimCount), view.Details.ClaimCount)
	require.Equal(t, int64(10), view.Details.L2ChainID.Int64())

	require.Len(t, view.Claims, 3)
	require.Equal(t, 0, view.Claims[0].Index)
	require.True(t, view.Claims[0].Root)
	require.Equal(t, 3, view.Claims[1].Index)
	require.Equal(t, 1, view.Claims[1].Depth)
	require.Equal(t, 2, view.Claims[2].Index)
	require.Equal(t, 0, view.Claims[2].Depth)
	require.Equal(t, dispute.Clock{Duration: 180, Timestamp: 1_700_000_003}, view.Claims[1].Clock)

	require.Len(t, view.ClaimFailures, 1)
	require.Equal(t, 1, view.ClaimFailures[0].Index)
}

func TestGameDetailsFailKeepsClaims(t *testing.T) {
	game := gameAddress(8)
	backend := newGameBackend(t, game)
	backend.Revert(game, contracts.FaultDisputeGameABI, "l2ChainId")

	s := NewService(backend, testChain, chains.RegistryInfo{}, narrowFetch)
	view, err := s.Game(context.Background(), game)
	require.NoError(t, err)

	require.Nil(t, view.Details)
	require.Contains(t, view.DetailsError, "execution reverted")
	require.Len(t, view.Claims, 3)
}

func TestGameNoContract(t *testing.T) {
	backend := contractstest.New()
	s := NewService(backend, testChain, chains.RegistryInfo{}, narrowFetch)

	_, err := s.Game(context.Background(), gameAddress(1))
	require.ErrorIs(t, err, contracts.ErrNoContract)
	require.Zero(t, backend.Calls("claimDataLen"))
}

func TestGameRendersTable(t *testing.T) {
	game := gameAddress(7)
	s := NewService(newGameBackend(t, game), testChain, chains.RegistryInfo{}, narrowFetch)

	view, err := s.Game(context.Background(), game)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, render.New(&out, configs.OutputTable).Print(view))
	require.Contains(t, out.String(), "root")
	require.Contains(t, out.String(), "None")
	require.Contains(t, out.String(), "0.08 ETH")
	require.Contains(t, out.String(), "Claim 1 could not be read")
}

func TestInfo(t *testing.T) {
	backend := newBackend(t)
	backend.Header = &types.Header{Number: big.NewInt(21_000_000)}
	backend.ChainIDVal = big.NewInt(1)
	backend.GasPriceVal = big.NewInt(1_500_000_000)

	s := NewService(backend, testChain, loadedRegistry(), testFetch)
	view, err := s.Info(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(1), view.ChainID.Int64())
	require.Equal(t, uint64(21_000_000), view.BlockNumber)
	require.NotNil(t, view.Addresses)
	require.Equal(t, factoryAddr, view.Addresses.DisputeGameFactory)
	require.Equal(t, portalAddr, view.Addresses.OptimismPortal)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"chainId":1`)
}

func TestInfoWithoutRegistry(t *testing.T) {
	backend := newBackend(t)
	backend.Header = &types.Header{Number: big.NewInt(1)}
	backend.ChainIDVal = big.NewInt(1)

	s := NewService(backend, testChain, chains.Failed(context.DeadlineExceeded), testFetch)
	view, err := s.Info(context.Background())
	require.NoError(t, err)
	require.Nil(t, view.Addresses)
	require.Contains(t, view.AddressesError, "deadline exceeded")
}

func TestReadClaimsRejectsHugeCount(t *testing.T) {
	game := gameAddress(9)
	backend := newGameBackend(t, game)
	backend.Return(game, contracts.FaultDisputeGameABI, "claimDataLen", big.NewInt(1<<62))

	s := NewService(backend, testChain, chains.RegistryInfo{}, narrowFetch)

	var err error
	require.NotPanics(t, func() {
		_, err = s.ReadClaims(context.Background(), contracts.NewFaultDisputeGame(game, backend))
	})
	require.ErrorIs(t, err, ErrTooManyClaims)
	require.Zero(t, backend.Calls("claimData"))

	view, err := s.Game(context.Background(), game)
	require.NoError(t, err)
	require.Contains(t, view.ClaimsError, "claim count exceeds limit")
	require.Empty(t, view.Claims)
}

func TestReadClaimsKeepsIndexOrder(t *testing.T) {
	game := gameAddress(10)
	backend := newGameBackend(t, game)

	var (
		lastDone = make(chan struct{})
		finished []uint64
		mu       sync.Mutex
	)
	backend.Handle(game, contracts.FaultDisputeGameABI, "claimData", func(args []any) ([]any, error) {
		i := args[0].(*big.Int).Uint64()
		if i == 0 {
			select {
			case <-lastDone:
			case <-time.After(2 * time.Second):
				return nil, errors.New("claim 3 never completed")
			}
		}

		mu.Lock()
		finished = append(finished, i)
		mu.Unlock()
		if i == claimCount-1 {
			defer close(lastDone)
		}

		parent := uint32(0)
		if i == 0 {
			parent = dispute.RootParentIndex
		}
		return []any{
			parent,
			common.Address{},
			common.HexToAddress("0xbeef"),
			big.NewInt(1),
			[32]byte{byte(i)},
			big.NewInt(int64(1 << i)),
			dispute.PackClock(i, 1_700_000_000),
		}, nil
	})

	s := NewService(backend, testChain, chains.RegistryInfo{}, testFetch)
	tree, err := s.ReadClaims(context.Background(), contracts.NewFaultDisputeGame(game, backend))
	require.NoError(t, err)

	mu.Lock()
	require.NotEqual(t, uint64(0), finished[0])
	mu.Unlock()

	require.Empty(t, tree.Failures())
	claims := tree.Claims()
	require.Len(t, claims, claimCount)
	for i, c := range claims {
		require.Equal(t, i, c.Index)
		require.Equal(t, common.Hash{byte(i)}, c.ClaimData.Claim)
		require.Equal(t, int64(1<<i), c.ClaimData.Position.Int64())
	}
}

func TestServiceTimeout(t *testing.T) {
	s := NewService(contractstest.New(), testChain, chains.RegistryInfo{}, configs.Fetch{})
	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	require.False(t, ok)
	require.NoError(t, ctx.Err())

	s = NewService(contractstest.New(), testChain, chains.RegistryInfo{}, testFetch)
	ctx, cancel = s.withTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(testFetch.Timeout), deadline, time.Second)
}
