package l1

import (
	"context"
	"fmt"
	"net/url"

	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// listedGameType is the game type the list view searches for.
const listedGameType uint32 = 0

// Games loads the page selected by query into list. The factory is resolved
// and the game count re-read on every call; list is reset whenever the
// factory address differs from the one it was built for.
func (s *Service) Games(ctx context.Context, list *dispute.GameList, query url.Values) (GamesView, error) {
	factory, err := s.factory(ctx)
	if err != nil {
		return GamesView{}, err
	}

	if list.SetFactory(factory.Address()) {
		s.logger.With("factory", factory.Address().Hex()).Debug("dispute game factory changed, state reset")
	}

	total, err := factory.GameCount(ctx)
	if err != nil {
		return GamesView{}, fmt.Errorf("failed to get game count: %w", err)
	}

	page := dispute.NewPage(dispute.ParsePage(query), total)

	games, err := s.readPage(ctx, factory, page)
	if err != nil {
		return GamesView{}, err
	}
	list.Update(page, games)

	return s.newGamesView(list, query), nil
}

func (s *Service) readPage(ctx context.Context, factory *contracts.DisputeGameFactory, page dispute.Page) ([]dispute.GameSummary, error) {
	start, count, ok := page.Window()
	if !ok {
		return nil, nil
	}

	results, err := factory.FindLatestGames(ctx, listedGameType, start, count)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest games: %w", err)
	}

	games := make([]dispute.GameSummary, 0, len(results))
	for _, r := range results {
		meta, err := dispute.ParseGameID(r.Metadata)
		if err != nil {
			s.logger.With("index", r.Index).With("err", err).Warn("skipping game with malformed metadata")
			continue
		}
		games = append(games, dispute.GameSummary{
			Index:     r.Index,
			Address:   meta.Address,
			Timestamp: r.Timestamp,
			Type:      meta.Type,
			RootClaim: common.Hash(r.RootClaim),
		})
	}

	s.resolveStatuses(ctx, games)

	return games, nil
}

// resolveStatuses reads status() for every game. A failed read leaves only
// that game's status unresolved.
func (s *Service) resolveStatuses(ctx context.Context, games []dispute.GameSummary) {
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i := range games {
		g.Go(func() error {
			status, err := contracts.NewFaultDisputeGame(games[i].Address, s.client).Status(ctx)
			if err != nil {
				s.logger.With("game", games[i].Address.Hex()).With("err", err).Warn("failed to read game status")
				return nil
			}
			games[i].ResolveStatus(status)
			return nil
		})
	}

	g.Wait()
}

func (s *Service) newGamesView(list *dispute.GameList, query url.Values) GamesView {
	view := GamesView{
		Network:          s.chain.Name,
		Factory:          list.Factory,
		Page:             list.Page.Current,
		TotalPages:       list.Page.DisplayTotalPages(),
		TotalGames:       list.Page.Total,
		InterestingGames: s.chain.InterestingGames,
		Games:            make([]GameRow, 0, len(list.Games)),
	}

	for _, g := range list.Games {
		row := GameRow{
			Index:     g.Index,
			Address:   g.Address,
			Type:      g.Type,
			TypeName:  dispute.GameTypeName(g.Type),
			Timestamp: g.Timestamp,
			RootClaim: g.RootClaim,
			Status:    g.StatusText(),
		}
		if _, ok := g.Status(); !ok {
			view.UnresolvedStatuses++
		}
		view.Games = append(view.Games, row)
	}

	if prev, ok := list.Page.PrevPage(query); ok {
		view.Prev = &PageLink{Page: dispute.ParsePage(prev), Query: prev.Encode()}
	}
	if next, ok := list.Page.NextPage(query); ok {
		view.Next = &PageLink{Page: dispute.ParsePage(next), Query: next.Encode()}
	}

	return view
}
