package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"blokus/evaluator"
	"blokus/experiments/metrics"
	"blokus/gamemaster"
	"blokus/searcher"
	"blokus/searcher/agent"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := runSelfPlay(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play run failed")
	}
}

type config struct {
	Games        int
	Simulations  int
	CPuct        float64
	Temperature  float64
	MaxPlies     int
	BufferSize   int
	EvaluatorURL string
	OutputDir    string
	Seed         uint64
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("games", 10)
	v.SetDefault("simulations", 50)
	v.SetDefault("c_puct", 1.0)
	v.SetDefault("temperature", 1.0)
	v.SetDefault("max_plies", 0)
	v.SetDefault("buffer_size", 100000)
	v.SetDefault("evaluator_url", "")
	v.SetDefault("output_dir", "experiments/selfplay")
	v.SetDefault("seed", uint64(time.Now().UnixNano()))

	v.SetConfigName("selfplay")
	v.AddConfigPath(".")
	v.SetEnvPrefix("blokus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, err
		}
	}

	return config{
		Games:        v.GetInt("games"),
		Simulations:  v.GetInt("simulations"),
		CPuct:        v.GetFloat64("c_puct"),
		Temperature:  v.GetFloat64("temperature"),
		MaxPlies:     v.GetInt("max_plies"),
		BufferSize:   v.GetInt("buffer_size"),
		EvaluatorURL: v.GetString("evaluator_url"),
		OutputDir:    v.GetString("output_dir"),
		Seed:         v.GetUint64("seed"),
	}, nil
}

func runSelfPlay(cfg config) error {
	var eval evaluator.Evaluator
	if cfg.EvaluatorURL != "" {
		eval = evaluator.NewRemote(cfg.EvaluatorURL)
		log.Info().Str("url", cfg.EvaluatorURL).Msg("using remote evaluator")
	} else {
		eval = evaluator.Heuristic{}
		log.Info().Msg("no evaluator backend configured, using heuristic evaluator")
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("writing run records")

	buffer := gamemaster.NewReplayBuffer(cfg.BufferSize)
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	ctx := context.Background()
	for i := 0; i < cfg.Games; i++ {
		mcts := searcher.NewMCTS(eval,
			searcher.WithSimulations(cfg.Simulations),
			searcher.WithCPuct(cfg.CPuct),
			searcher.WithMetrics(searcher.NewMetricsCollector()),
		)
		player := agent.NewTrainingAgent(mcts, cfg.Temperature, cfg.Seed+uint64(i))
		driver := gamemaster.NewLocalGame(player, cfg.MaxPlies)

		start := time.Now()
		log.Info().Int("game", i+1).Msg("self-play game started")

		trajectory, err := driver.Run(ctx)
		if err != nil {
			return err
		}

		buffer.Push(trajectory.Samples)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:        i + 1,
			Plies:     trajectory.Plies,
			Scores:    trajectory.Scores,
			StartTime: start,
			Duration:  time.Since(start),
		})
		for ply, m := range trajectory.MoveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:          i + 1,
				Ply:           ply,
				Player:        trajectory.Samples[ply].Player,
				SearchMetrics: m,
			})
		}

		log.Info().
			Int("game", i+1).
			Int("plies", trajectory.Plies).
			Ints("scores", trajectory.Scores[:]).
			Int("buffered_samples", buffer.Len()).
			Msg("self-play game over")
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}
