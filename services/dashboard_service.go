package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/scouting-system/models"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardTopPlayersLimit   = 5
	dashboardRecentVideosLimit = 5
)

type DashboardService interface {
	// GetSummary aggregates the landing-page widgets in one call.
	GetSummary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	players  PlayerService
	videos   VideoService
	f1       F1Service
	football FootballService
}

func NewDashboardService(
	players PlayerService,
	videos VideoService,
	f1 F1Service,
	football FootballService,
) DashboardService {
	return &dashboardService{
		players:  players,
		videos:   videos,
		f1:       f1,
		football: football,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		players, err := s.players.GetTopPlayers(gctx, dashboardTopPlayersLimit)
		if err != nil {
			return err
		}
		summary.TopPlayers = players
		return nil
	})

	g.Go(func() error {
		videos, err := s.videos.GetRecentVideos(gctx, dashboardRecentVideosLimit)
		if err != nil {
			return err
		}
		summary.RecentVideos = videos
		return nil
	})

	g.Go(func() error {
		races, err := s.f1.GetUpcomingRaces(gctx)
		if err != nil {
			return err
		}
		summary.UpcomingRaces = races
		return nil
	})

	g.Go(func() error {
		matches, err := s.football.GetUpcomingMatches(gctx)
		if err != nil {
			return err
		}
		summary.UpcomingMatches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	return summary, nil
}
