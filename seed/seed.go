// Package seed loads the demo fixtures used by the in-memory backend.
// Seeding is an explicit step: construction of the repositories never
// seeds anything, main decides whether to call Demo.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

func ptr[T any](v T) *T {
	return &v
}

// Demo populates the store with the demo scouting data set: a demo user,
// eight players (metrics for five of them), two analyzed videos, the 2025
// F1 season sample and the Premier/Roshn Saudi League football sample.
func Demo(
	ctx context.Context,
	users services.UserService,
	players services.PlayerService,
	videos services.VideoService,
	f1 services.F1Service,
	football services.FootballService,
) error {
	if _, err := users.Register(ctx, services.RegisterUserInput{
		Username: "demo",
		Password: "password",
		FullName: ptr("John Carter"),
		Role:     ptr("Head Scout"),
		AvatarURL: ptr("https://images.unsplash.com/photo-1568602471122-7832951cc4c5" +
			"?ixlib=rb-1.2.1&auto=format&fit=crop&w=100&q=80"),
	}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	if err := seedPlayers(ctx, players); err != nil {
		return err
	}
	if err := seedVideos(ctx, videos); err != nil {
		return err
	}
	if err := seedF1(ctx, f1); err != nil {
		return err
	}
	if err := seedFootball(ctx, football); err != nil {
		return err
	}
	return nil
}

type seededPlayer struct {
	player  services.CreatePlayerInput
	metrics *services.CreatePlayerMetricsInput
}

func seedPlayers(ctx context.Context, players services.PlayerService) error {
	fixtures := []seededPlayer{
		{
			player: services.CreatePlayerInput{
				Name:             "Lionel Messi",
				Age:              ptr(36),
				Team:             ptr("Inter Miami CF"),
				Position:         ptr("Forward"),
				Description:      ptr("One of the greatest footballers of all time. Known for his exceptional dribbling skills, vision, and goalscoring ability."),
				AvatarURL:        ptr("/assets/player-images/messi.jpg"),
				RecruitmentMatch: ptr(99),
			},
			metrics: &services.CreatePlayerMetricsInput{
				Speed: ptr(88.0), Agility: ptr(95.0), BallControl: ptr(98.0),
				Pace: ptr(87.0), Technique: ptr(97.0), Finishing: ptr(94.0),
				Passing: ptr(96.0), Vision: ptr(95.0), Stamina: ptr(85.0),
				Tackling: ptr(48.0), Strength: ptr(72.0), Positioning: ptr(93.0),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Erling Haaland",
				Age:              ptr(23),
				Team:             ptr("Manchester City"),
				Position:         ptr("Forward"),
				Description:      ptr("Phenomenal striker with incredible speed, strength and finishing ability. Natural goalscorer with great positioning."),
				AvatarURL:        ptr("/assets/player-images/haaland.jpg"),
				RecruitmentMatch: ptr(96),
			},
			metrics: &services.CreatePlayerMetricsInput{
				Speed: ptr(92.0), Agility: ptr(85.0), BallControl: ptr(86.0),
				Pace: ptr(90.0), Technique: ptr(85.0), Finishing: ptr(95.0),
				Passing: ptr(75.0), Vision: ptr(82.0), Stamina: ptr(88.0),
				Tackling: ptr(45.0), Strength: ptr(94.0), Positioning: ptr(92.0),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Jude Bellingham",
				Age:              ptr(20),
				Team:             ptr("Real Madrid"),
				Position:         ptr("Midfielder"),
				Description:      ptr("Complete midfielder with exceptional technical ability and game intelligence. Natural leader with great potential."),
				AvatarURL:        ptr("/assets/player-images/bellingham.jpg"),
				RecruitmentMatch: ptr(95),
			},
			metrics: &services.CreatePlayerMetricsInput{
				Speed: ptr(84.0), Agility: ptr(88.0), BallControl: ptr(90.0),
				Pace: ptr(83.0), Technique: ptr(89.0), Finishing: ptr(82.0),
				Passing: ptr(88.0), Vision: ptr(87.0), Stamina: ptr(92.0),
				Tackling: ptr(85.0), Strength: ptr(86.0), Positioning: ptr(88.0),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Kylian Mbappé",
				Age:              ptr(25),
				Team:             ptr("Paris Saint-Germain"),
				Position:         ptr("Forward"),
				Description:      ptr("Explosive forward with blistering pace and clinical finishing. Modern complete forward with great potential."),
				AvatarURL:        ptr("/assets/player-images/mbappe.jpg"),
				RecruitmentMatch: ptr(97),
			},
			metrics: &services.CreatePlayerMetricsInput{
				Speed: ptr(97.0), Agility: ptr(93.0), BallControl: ptr(89.0),
				Pace: ptr(96.0), Technique: ptr(90.0), Finishing: ptr(91.0),
				Passing: ptr(83.0), Vision: ptr(85.0), Stamina: ptr(88.0),
				Tackling: ptr(42.0), Strength: ptr(78.0), Positioning: ptr(90.0),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Cristiano Ronaldo",
				Age:              ptr(40),
				Team:             ptr("Al Nassr FC"),
				Position:         ptr("Forward"),
				Description:      ptr("One of the greatest footballers of all time. Known for his goalscoring ability, athleticism, and leadership on the field. Currently plays in the Roshn Saudi League for Al Nassr FC."),
				AvatarURL:        ptr("/assets/player-images/cristiano.jpg"),
				RecruitmentMatch: ptr(98),
			},
			metrics: &services.CreatePlayerMetricsInput{
				Speed: ptr(85.0), Agility: ptr(83.0), BallControl: ptr(90.0),
				Pace: ptr(84.0), Technique: ptr(92.0), Finishing: ptr(95.0),
				Passing: ptr(83.0), Vision: ptr(87.0), Stamina: ptr(88.0),
				Tackling: ptr(52.0), Strength: ptr(88.0), Positioning: ptr(94.0),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Sarah Williams",
				Age:              ptr(24),
				Team:             ptr("Chelsea FC"),
				Position:         ptr("Forward"),
				Description:      ptr("Exceptional speed and finishing ability. Excellent movement off the ball."),
				AvatarURL:        ptr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=100&q=80"),
				RecruitmentMatch: ptr(94),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "David Chen",
				Age:              ptr(26),
				Team:             ptr("Arsenal FC"),
				Position:         ptr("Midfielder"),
				Description:      ptr("Great vision and passing range. Controls the tempo of the game."),
				AvatarURL:        ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-1.2.1&auto=format&fit=crop&w=100&q=80"),
				RecruitmentMatch: ptr(91),
			},
		},
		{
			player: services.CreatePlayerInput{
				Name:             "Alex Morgan",
				Age:              ptr(25),
				Team:             ptr("Liverpool FC"),
				Position:         ptr("Defender"),
				Description:      ptr("Strong in the tackle with excellent positional awareness."),
				AvatarURL:        ptr("https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?ixlib=rb-1.2.1&auto=format&fit=crop&w=100&q=80"),
				RecruitmentMatch: ptr(89),
			},
		},
	}

	for _, fixture := range fixtures {
		player, err := players.CreatePlayer(ctx, fixture.player)
		if err != nil {
			return fmt.Errorf("seed player %s: %w", fixture.player.Name, err)
		}
		if fixture.metrics == nil {
			continue
		}
		metrics := *fixture.metrics
		metrics.PlayerID = player.ID
		if _, err := players.CreateMetrics(ctx, metrics); err != nil {
			return fmt.Errorf("seed metrics for %s: %w", fixture.player.Name, err)
		}
	}
	return nil
}

func seedVideos(ctx context.Context, videos services.VideoService) error {
	fixtures := []services.CreateVideoInput{
		{
			Title:           "Training_Session_June15.mp4",
			FileName:        "Training_Session_June15.mp4",
			FileSize:        ptr(int64(10200000)),
			Duration:        ptr(300),
			PlayerID:        ptr(1),
			UploadedByID:    ptr(1),
			Status:          ptr(models.VideoStatusCompleted),
			AnalysisResults: models.Document(`{"speed":86,"agility":78,"ballControl":92}`),
		},
		{
			Title:           "Match_Highlights_FC_Barcelona.mp4",
			FileName:        "Match_Highlights_FC_Barcelona.mp4",
			FileSize:        ptr(int64(32700000)),
			Duration:        ptr(480),
			PlayerID:        ptr(1),
			UploadedByID:    ptr(1),
			Status:          ptr(models.VideoStatusCompleted),
			AnalysisResults: models.Document(`{"speed":84,"agility":76,"ballControl":90}`),
		},
	}

	for _, fixture := range fixtures {
		if _, err := videos.CreateVideo(ctx, fixture); err != nil {
			return fmt.Errorf("seed video %s: %w", fixture.Title, err)
		}
	}
	return nil
}

func seedF1(ctx context.Context, f1 services.F1Service) error {
	verstappen, err := f1.CreateDriver(ctx, services.CreateF1DriverInput{
		Name: "Max Verstappen", Team: "Red Bull Racing", Number: ptr(1), AvatarURL: ptr(""),
	})
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}
	hamilton, err := f1.CreateDriver(ctx, services.CreateF1DriverInput{
		Name: "Lewis Hamilton", Team: "Mercedes", Number: ptr(44), AvatarURL: ptr(""),
	})
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}
	leclerc, err := f1.CreateDriver(ctx, services.CreateF1DriverInput{
		Name: "Charles Leclerc", Team: "Ferrari", Number: ptr(16), AvatarURL: ptr(""),
	})
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	monaco, err := f1.CreateRace(ctx, services.CreateF1RaceInput{
		Name:     "Monaco Grand Prix",
		Location: ptr("Monte Carlo, Monaco"),
		Date:     ptr(time.Date(2025, time.May, 24, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		return fmt.Errorf("seed race: %w", err)
	}

	otherRaces := []services.CreateF1RaceInput{
		{
			Name:     "Saudi Arabian Grand Prix",
			Location: ptr("Jeddah, Saudi Arabia"),
			Date:     ptr(time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			Name:     "Australian Grand Prix",
			Location: ptr("Melbourne, Australia"),
			Date:     ptr(time.Date(2025, time.March, 23, 0, 0, 0, 0, time.UTC)),
		},
		{
			Name:     "Spanish Grand Prix",
			Location: ptr("Barcelona, Spain"),
			Date:     ptr(time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)),
		},
	}
	for _, race := range otherRaces {
		if _, err := f1.CreateRace(ctx, race); err != nil {
			return fmt.Errorf("seed race %s: %w", race.Name, err)
		}
	}

	predictions := []services.CreateF1PredictionInput{
		{
			RaceID: monaco.ID, DriverID: verstappen.ID,
			Position: ptr(1), WinProbability: ptr(68.0),
			Factors: models.Document(`{"trackTemperature":"28°C","weather":"Clear Skies","tireStrategy":"Medium → Hard","trackType":"Street Circuit","downforceLevel":"Maximum","engineMode":"High Performance"}`),
		},
		{
			RaceID: monaco.ID, DriverID: hamilton.ID,
			Position: ptr(2), WinProbability: ptr(53.0),
			Factors: models.Document(`{"trackTemperature":"28°C","weather":"Clear Skies","tireStrategy":"Soft → Medium","trackType":"Street Circuit","downforceLevel":"Maximum","engineMode":"Balanced"}`),
		},
		{
			RaceID: monaco.ID, DriverID: leclerc.ID,
			Position: ptr(3), WinProbability: ptr(42.0),
			Factors: models.Document(`{"trackTemperature":"28°C","weather":"Clear Skies","tireStrategy":"Medium → Hard","trackType":"Street Circuit","downforceLevel":"High","engineMode":"Fuel Saving"}`),
		},
	}
	for _, prediction := range predictions {
		if _, err := f1.CreatePrediction(ctx, prediction); err != nil {
			return fmt.Errorf("seed prediction: %w", err)
		}
	}
	return nil
}

func seedFootball(ctx context.Context, football services.FootballService) error {
	manCity, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Manchester City",
		League:  ptr("Premier League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/e/eb/Manchester_City_FC_badge.svg"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	liverpool, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Liverpool",
		League:  ptr("Premier League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/0/0c/Liverpool_FC.svg"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	alHilal, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Al Hilal",
		League:  ptr("Roshn Saudi League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/a/a9/Al_Hilal_FC_logo.svg"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	alNassr, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Al Nassr",
		League:  ptr("Roshn Saudi League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/a/a0/Al_Nassr_FC.png"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	alAhli, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Al Ahli",
		League:  ptr("Roshn Saudi League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/e/eb/Al_Ahli_Saudi_FC_logo.png"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	alIttihad, err := football.CreateTeam(ctx, services.CreateFootballTeamInput{
		Name:    "Al Ittihad",
		League:  ptr("Roshn Saudi League"),
		LogoURL: ptr("https://upload.wikimedia.org/wikipedia/en/2/24/Ittihad_FC.png"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}

	premierMatch, err := football.CreateMatch(ctx, services.CreateFootballMatchInput{
		HomeTeamID: manCity.ID,
		AwayTeamID: liverpool.ID,
		Date:       ptr(time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		return fmt.Errorf("seed match: %w", err)
	}
	saudiMatch1, err := football.CreateMatch(ctx, services.CreateFootballMatchInput{
		HomeTeamID: alHilal.ID,
		AwayTeamID: alNassr.ID,
		Date:       ptr(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		return fmt.Errorf("seed match: %w", err)
	}
	saudiMatch2, err := football.CreateMatch(ctx, services.CreateFootballMatchInput{
		HomeTeamID: alAhli.ID,
		AwayTeamID: alIttihad.ID,
		Date:       ptr(time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		return fmt.Errorf("seed match: %w", err)
	}
	if _, err := football.CreateMatch(ctx, services.CreateFootballMatchInput{
		HomeTeamID: alNassr.ID,
		AwayTeamID: alAhli.ID,
		Date:       ptr(time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		return fmt.Errorf("seed match: %w", err)
	}
	if _, err := football.CreateMatch(ctx, services.CreateFootballMatchInput{
		HomeTeamID: alIttihad.ID,
		AwayTeamID: alHilal.ID,
		Date:       ptr(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		return fmt.Errorf("seed match: %w", err)
	}

	predictions := []services.CreateFootballPredictionInput{
		{
			MatchID:            premierMatch.ID,
			PredictedHomeScore: ptr(3), PredictedAwayScore: ptr(1),
			WinProbability: ptr(62.0), DrawProbability: ptr(26.0), LossProbability: ptr(12.0),
			Confidence: ptr(87),
			Stats:      models.Document(`{"possession":[58,42],"expectedGoals":[2.4,1.1],"shotsOnTarget":[7,4]}`),
		},
		{
			MatchID:            saudiMatch1.ID,
			PredictedHomeScore: ptr(2), PredictedAwayScore: ptr(2),
			WinProbability: ptr(38.0), DrawProbability: ptr(40.0), LossProbability: ptr(22.0),
			Confidence: ptr(75),
			Stats:      models.Document(`{"possession":[45,55],"expectedGoals":[1.8,2.0],"shotsOnTarget":[5,6]}`),
		},
		{
			MatchID:            saudiMatch2.ID,
			PredictedHomeScore: ptr(1), PredictedAwayScore: ptr(3),
			WinProbability: ptr(28.0), DrawProbability: ptr(25.0), LossProbability: ptr(47.0),
			Confidence: ptr(82),
			Stats:      models.Document(`{"possession":[40,60],"expectedGoals":[1.2,2.6],"shotsOnTarget":[4,8]}`),
		},
	}
	for _, prediction := range predictions {
		if _, err := football.CreatePrediction(ctx, prediction); err != nil {
			return fmt.Errorf("seed football prediction: %w", err)
		}
	}

	stats := []struct {
		teamID int
		input  services.CreateTeamStatInput
	}{
		{
			teamID: alHilal.ID,
			input: services.CreateTeamStatInput{
				LeaguePosition: ptr(1), WinProbability: ptr(45.0), Form: ptr("WWDWW"),
				GoalDifference: ptr(28), Points: ptr(72),
				RecentResults: models.Document(`[{"opponent":"Al Nassr","result":"W","score":"3-1"},{"opponent":"Al Ahli","result":"W","score":"2-0"},{"opponent":"Al Ittihad","result":"D","score":"1-1"},{"opponent":"Al Shabab","result":"W","score":"3-0"},{"opponent":"Al Taawoun","result":"W","score":"2-1"}]`),
			},
		},
		{
			teamID: alNassr.ID,
			input: services.CreateTeamStatInput{
				LeaguePosition: ptr(2), WinProbability: ptr(30.0), Form: ptr("WLWWW"),
				GoalDifference: ptr(22), Points: ptr(68),
				RecentResults: models.Document(`[{"opponent":"Al Hilal","result":"L","score":"1-3"},{"opponent":"Al Ahli","result":"W","score":"2-1"},{"opponent":"Al Ittihad","result":"W","score":"3-0"},{"opponent":"Al Shabab","result":"W","score":"2-1"},{"opponent":"Al Taawoun","result":"W","score":"3-2"}]`),
			},
		},
		{
			teamID: alAhli.ID,
			input: services.CreateTeamStatInput{
				LeaguePosition: ptr(3), WinProbability: ptr(15.0), Form: ptr("LWWLD"),
				GoalDifference: ptr(18), Points: ptr(61),
				RecentResults: models.Document(`[{"opponent":"Al Hilal","result":"L","score":"0-2"},{"opponent":"Al Nassr","result":"L","score":"1-2"},{"opponent":"Al Ittihad","result":"W","score":"2-1"},{"opponent":"Al Shabab","result":"W","score":"2-0"},{"opponent":"Al Taawoun","result":"D","score":"1-1"}]`),
			},
		},
		{
			teamID: alIttihad.ID,
			input: services.CreateTeamStatInput{
				LeaguePosition: ptr(4), WinProbability: ptr(10.0), Form: ptr("WDLWW"),
				GoalDifference: ptr(15), Points: ptr(58),
				RecentResults: models.Document(`[{"opponent":"Al Hilal","result":"D","score":"1-1"},{"opponent":"Al Nassr","result":"L","score":"0-3"},{"opponent":"Al Ahli","result":"L","score":"1-2"},{"opponent":"Al Shabab","result":"W","score":"2-0"},{"opponent":"Al Taawoun","result":"W","score":"2-1"}]`),
			},
		},
	}
	for _, stat := range stats {
		if _, err := football.CreateTeamStat(ctx, stat.teamID, stat.input); err != nil {
			return fmt.Errorf("seed team stats: %w", err)
		}
	}
	return nil
}
