package l1

import (
	"context"
	"errors"
	"fmt"

	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// maxClaimCount caps the claims read from one game.
const maxClaimCount = 1 << 16

// ErrTooManyClaims is returned when claimDataLen exceeds maxClaimCount.
var ErrTooManyClaims = errors.New("claim count exceeds limit")

// Game reads the details and full claim tree of one dispute game. An address
// without code yields an error wrapping contracts.ErrNoContract and nothing
// else is read.
func (s *Service) Game(ctx context.Context, address common.Address) (GameView, error) {
	if err := contracts.EnsureCode(ctx, s.client, address); err != nil {
		return GameView{}, err
	}

	game := contracts.NewFaultDisputeGame(address, s.client)
	view := GameView{Address: address}

	details, err := s.readDetails(ctx, game)
	if err != nil {
		s.logger.With("game", address.Hex()).With("err", err).Warn("failed to read game details")
		view.DetailsError = err.Error()
	} else {
		view.Details = details
	}

	tree, err := s.ReadClaims(ctx, game)
	if err != nil {
		s.logger.With("game", address.Hex()).With("err", err).Warn("failed to read claims")
		view.ClaimsError = err.Error()
		return view, nil
	}
	view.setClaims(tree)

	return view, nil
}

func (s *Service) readDetails(ctx context.Context, game *contracts.FaultDisputeGame) (*GameDetails, error) {
	var (
		d      GameDetails
		status dispute.GameStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	g.Go(func() (err error) { d.CreatedAt, err = game.CreatedAt(gctx); return })
	g.Go(func() (err error) { d.GameType, err = game.GameType(gctx); return })
	g.Go(func() (err error) { d.RootClaim, err = game.RootClaim(gctx); return })
	g.Go(func() (err error) { status, err = game.Status(gctx); return })
	g.Go(func() (err error) { d.L1Head, err = game.L1Head(gctx); return })
	g.Go(func() (err error) { d.GameCreator, err = game.GameCreator(gctx); return })
	g.Go(func() (err error) { d.L2BlockNumber, err = game.L2BlockNumber(gctx); return })
	g.Go(func() (err error) { d.L2ChainID, err = game.L2ChainID(gctx); return })
	g.Go(func() (err error) { d.ClaimCount, err = game.ClaimDataLen(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.GameTypeName = dispute.GameTypeName(d.GameType)
	d.Status = uint8(status)
	d.StatusText = status.String()

	return &d, nil
}

// ReadClaims reads claimDataLen and then every claim. Reads run concurrently
// and results are placed by index; a failed index is recorded in the tree
// without affecting the others.
func (s *Service) ReadClaims(ctx context.Context, game *contracts.FaultDisputeGame) (*dispute.ClaimTree, error) {
	n, err := game.ClaimDataLen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim count: %w", err)
	}

	if n > maxClaimCount {
		return nil, fmt.Errorf("%w: claimDataLen %d, limit %d", ErrTooManyClaims, n, maxClaimCount)
	}

	results := make([]dispute.ClaimResult, n)

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i := range results {
		g.Go(func() error {
			claim, err := game.ClaimData(ctx, i)
			if err != nil {
				s.logger.With("game", game.Address().Hex()).With("index", i).With("err", err).Warn("failed to read claim")
			}
			results[i] = dispute.ClaimResult{Claim: claim, Err: err}
			return nil
		})
	}

	g.Wait()

	return dispute.NewClaimTree(results), nil
}
