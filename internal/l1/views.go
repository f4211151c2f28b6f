package l1

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/ethereum/go-ethereum/common"
)

type (
	InfoView struct {
		Network        configs.ChainName      `json:"network" yaml:"network"`
		DisplayName    string                 `json:"displayName" yaml:"displayName"`
		ChainID        *big.Int               `json:"chainId" yaml:"chainId"`
		BlockNumber    uint64                 `json:"blockNumber" yaml:"blockNumber"`
		GasPrice       *big.Int               `json:"gasPrice" yaml:"gasPrice"`
		Addresses      *SystemConfigAddresses `json:"addresses,omitempty" yaml:"addresses,omitempty"`
		AddressesError string                 `json:"addressesError,omitempty" yaml:"addressesError,omitempty"`
	}

	SystemConfigAddresses struct {
		SystemConfig           common.Address `json:"systemConfig" yaml:"systemConfig"`
		L1StandardBridge       common.Address `json:"l1StandardBridge" yaml:"l1StandardBridge"`
		OptimismPortal         common.Address `json:"optimismPortal" yaml:"optimismPortal"`
		L1CrossDomainMessenger common.Address `json:"l1CrossDomainMessenger" yaml:"l1CrossDomainMessenger"`
		DisputeGameFactory     common.Address `json:"disputeGameFactory" yaml:"disputeGameFactory"`
	}
)

func (v InfoView) Sections() []render.Section {
	head := render.KeyValues(fmt.Sprintf("L1 of %s", v.DisplayName),
		render.KV{Key: "Chain ID", Value: v.ChainID},
		render.KV{Key: "Block Number", Value: v.BlockNumber},
		render.KV{Key: "Gas Price", Value: render.Gwei(v.GasPrice)},
	)

	if v.Addresses == nil {
		return []render.Section{head, {Title: "System Contracts", Notes: []string{v.AddressesError}}}
	}

	a := v.Addresses
	return []render.Section{
		head,
		render.KeyValues("System Contracts",
			render.KV{Key: "SystemConfig", Value: a.SystemConfig.Hex()},
			render.KV{Key: "L1StandardBridge", Value: a.L1StandardBridge.Hex()},
			render.KV{Key: "OptimismPortal", Value: a.OptimismPortal.Hex()},
			render.KV{Key: "L1CrossDomainMessenger", Value: a.L1CrossDomainMessenger.Hex()},
			render.KV{Key: "DisputeGameFactory", Value: a.DisputeGameFactory.Hex()},
		),
	}
}

type (
	GamesView struct {
		Network            configs.ChainName        `json:"network" yaml:"network"`
		Factory            common.Address           `json:"factory" yaml:"factory"`
		Page               int                      `json:"page" yaml:"page"`
		TotalPages         uint64                   `json:"totalPages" yaml:"totalPages"`
		TotalGames         uint64                   `json:"totalGames" yaml:"totalGames"`
		Games              []GameRow                `json:"games" yaml:"games"`
		UnresolvedStatuses int                      `json:"unresolvedStatuses,omitempty" yaml:"unresolvedStatuses,omitempty"`
		InterestingGames   []chains.InterestingGame `json:"interestingGames,omitempty" yaml:"interestingGames,omitempty"`
		Prev               *PageLink                `json:"prev,omitempty" yaml:"prev,omitempty"`
		Next               *PageLink                `json:"next,omitempty" yaml:"next,omitempty"`
	}

	GameRow struct {
		Index     *big.Int       `json:"index" yaml:"index"`
		Address   common.Address `json:"address" yaml:"address"`
		Type      uint32         `json:"type" yaml:"type"`
		TypeName  string         `json:"typeName" yaml:"typeName"`
		Timestamp uint64         `json:"timestamp" yaml:"timestamp"`
		RootClaim common.Hash    `json:"rootClaim" yaml:"rootClaim"`
		Status    string         `json:"status" yaml:"status"`
	}

	// PageLink is a navigation target. Query is the canonical encoded page
	// parameter, empty for the first page.
	PageLink struct {
		Page  int    `json:"page" yaml:"page"`
		Query string `json:"query" yaml:"query"`
	}
)

func (v GamesView) Sections() []render.Section {
	var sections []render.Section

	if len(v.InterestingGames) > 0 {
		s := render.Section{Title: "Interesting Games", Headers: []string{"Address", "Description"}}
		for _, g := range v.InterestingGames {
			s.Rows = append(s.Rows, []any{g.Address.Hex(), g.Description})
		}
		sections = append(sections, s)
	}

	games := render.Section{
		Title:   fmt.Sprintf("Dispute Games (factory %s, %d total)", v.Factory.Hex(), v.TotalGames),
		Headers: []string{"Index", "Address", "Type", "Created", "Root Claim", "Status"},
	}
	for _, g := range v.Games {
		games.Rows = append(games.Rows, []any{
			g.Index,
			g.Address.Hex(),
			g.TypeName,
			render.Timestamp(g.Timestamp),
			render.ShortHash(g.RootClaim),
			g.Status,
		})
	}

	games.Notes = append(games.Notes, fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages))
	if v.UnresolvedStatuses > 0 {
		games.Notes = append(games.Notes, fmt.Sprintf("%d game statuses could not be read", v.UnresolvedStatuses))
	}
	if v.Prev != nil {
		games.Notes = append(games.Notes, "Previous: "+v.Prev.hint())
	}
	if v.Next != nil {
		games.Notes = append(games.Notes, "Next: "+v.Next.hint())
	}

	return append(sections, games)
}

func (l PageLink) hint() string {
	if l.Query == "" {
		return "(no --page)"
	}
	return fmt.Sprintf("--page %d", l.Page)
}

type (
	GameView struct {
		Address       common.Address    `json:"address" yaml:"address"`
		Details       *GameDetails      `json:"details,omitempty" yaml:"details,omitempty"`
		DetailsError  string            `json:"detailsError,omitempty" yaml:"detailsError,omitempty"`
		Claims        []ClaimRow        `json:"claims" yaml:"claims"`
		ClaimFailures []ClaimFailureRow `json:"claimFailures,omitempty" yaml:"claimFailures,omitempty"`
		ClaimsError   string            `json:"claimsError,omitempty" yaml:"claimsError,omitempty"`
	}

	GameDetails struct {
		CreatedAt     uint64         `json:"createdAt" yaml:"createdAt"`
		GameType      uint32         `json:"gameType" yaml:"gameType"`
		GameTypeName  string         `json:"gameTypeName" yaml:"gameTypeName"`
		RootClaim     common.Hash    `json:"rootClaim" yaml:"rootClaim"`
		Status        uint8          `json:"status" yaml:"status"`
		StatusText    string         `json:"statusText" yaml:"statusText"`
		L1Head        common.Hash    `json:"l1Head" yaml:"l1Head"`
		GameCreator   common.Address `json:"gameCreator" yaml:"gameCreator"`
		L2BlockNumber *big.Int       `json:"l2BlockNumber" yaml:"l2BlockNumber"`
		L2ChainID     *big.Int       `json:"l2ChainId" yaml:"l2ChainId"`
		ClaimCount    uint64         `json:"claimCount" yaml:"claimCount"`
	}

	ClaimRow struct {
		Index       int            `json:"index" yaml:"index"`
		Depth       int            `json:"depth" yaml:"depth"`
		ParentIndex uint32         `json:"parentIndex" yaml:"parentIndex"`
		Root        bool           `json:"root" yaml:"root"`
		CounteredBy common.Address `json:"counteredBy" yaml:"counteredBy"`
		Claimant    common.Address `json:"claimant" yaml:"claimant"`
		Bond        *big.Int       `json:"bond" yaml:"bond"`
		Claim       common.Hash    `json:"claim" yaml:"claim"`
		Position    *big.Int       `json:"position" yaml:"position"`
		Clock       dispute.Clock  `json:"clock" yaml:"clock"`
	}

	ClaimFailureRow struct {
		Index int    `json:"index" yaml:"index"`
		Error string `json:"error" yaml:"error"`
	}
)

// setClaims flattens tree in walk order so children follow their parent.
func (v *GameView) setClaims(tree *dispute.ClaimTree) {
	v.Claims = make([]ClaimRow, 0, tree.Len())
	tree.Walk(func(c dispute.Claim, depth int) {
		d := c.ClaimData
		v.Claims = append(v.Claims, ClaimRow{
			Index:       c.Index,
			Depth:       depth,
			ParentIndex: d.ParentIndex,
			Root:        c.IsRoot(),
			CounteredBy: d.CounteredBy,
			Claimant:    d.Claimant,
			Bond:        d.Bond,
			Claim:       d.Claim,
			Position:    d.Position,
			Clock:       d.Clock,
		})
	})

	for _, f := range tree.Failures() {
		v.ClaimFailures = append(v.ClaimFailures, ClaimFailureRow{Index: f.Index, Error: f.Err.Error()})
	}
}

func (v GameView) Sections() []render.Section {
	var details render.Section
	if d := v.Details; d != nil {
		details = render.KeyValues(fmt.Sprintf("Dispute Game %s", v.Address.Hex()),
			render.KV{Key: "Created", Value: render.Timestamp(d.CreatedAt)},
			render.KV{Key: "Game Type", Value: fmt.Sprintf("%s (%d)", d.GameTypeName, d.GameType)},
			render.KV{Key: "Status", Value: d.StatusText},
			render.KV{Key: "Root Claim", Value: d.RootClaim.Hex()},
			render.KV{Key: "L1 Head", Value: d.L1Head.Hex()},
			render.KV{Key: "Creator", Value: d.GameCreator.Hex()},
			render.KV{Key: "L2 Block", Value: d.L2BlockNumber},
			render.KV{Key: "L2 Chain ID", Value: d.L2ChainID},
			render.KV{Key: "Claims", Value: d.ClaimCount},
		)
	} else {
		details = render.Section{
			Title: fmt.Sprintf("Dispute Game %s", v.Address.Hex()),
			Notes: []string{"Details unavailable: " + v.DetailsError},
		}
	}

	claims := render.Section{
		Title:   "Claims",
		Headers: []string{"Index", "Parent", "Claim", "Claimant", "Countered By", "Bond", "Position", "Clock"},
	}
	for _, c := range v.Claims {
		parent := fmt.Sprint(c.ParentIndex)
		if c.Root {
			parent = "root"
		}
		claims.Rows = append(claims.Rows, []any{
			strings.Repeat("  ", c.Depth) + fmt.Sprint(c.Index),
			parent,
			render.ShortHash(c.Claim),
			c.Claimant.Hex(),
			render.AddressOrNone(c.CounteredBy),
			render.Ether(c.Bond),
			c.Position,
			fmt.Sprintf("%s @ %s", c.Clock.Elapsed(), render.Timestamp(c.Clock.Timestamp)),
		})
	}
	if v.ClaimsError != "" {
		claims.Notes = append(claims.Notes, "Claims unavailable: "+v.ClaimsError)
	}
	for _, f := range v.ClaimFailures {
		claims.Notes = append(claims.Notes, fmt.Sprintf("Claim %d could not be read: %s", f.Index, f.Error))
	}

	return []render.Section{details, claims}
}

// NoContractView is shown when the requested address holds no code.
type NoContractView struct {
	Address common.Address `json:"address" yaml:"address"`
	Found   bool           `json:"found" yaml:"found"`
}

func (v NoContractView) Sections() []render.Section {
	return []render.Section{{Notes: []string{fmt.Sprintf("No contract found at %s", v.Address.Hex())}}}
}
