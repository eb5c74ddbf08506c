package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/cutoff/internal/api"
	"github.com/tensorplex-labs/cutoff/internal/config"
	"github.com/tensorplex-labs/cutoff/internal/curve"
	"github.com/tensorplex-labs/cutoff/internal/dataset"
	"github.com/tensorplex-labs/cutoff/internal/threshold"
	"github.com/tensorplex-labs/cutoff/internal/utils/logger"
)

var (
	inputPath    = flag.String("input", "", "evaluation split (.json, .json.gz or .json.zst)")
	strategyName = flag.String("strategy", "", "gmean, youden-j, f-score-curve, f-score-grid or all (default $SELECT_STRATEGY)")
	jsonOutput   = flag.Bool("json", false, "print the selections as JSON")
	topN         = flag.Int("top", 0, "also print the N best candidates of every strategy")
	serverURL    = flag.String("server", "", "select through a remote cutoff server instead of locally")
)

type report struct {
	api.SelectResponse
	DefaultThreshold float64 `json:"default_threshold"`
	DefaultFScore    float64 `json:"default_f_score"`
}

func main() {
	logger.Init()

	ctx := context.Background()
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *inputPath == "" {
		log.Fatal().Msg("-input is required")
	}

	split, err := dataset.Load(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load evaluation split")
	}

	strategies, err := resolveStrategies(*strategyName, cfg.Strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid strategy")
	}

	grid := threshold.Grid{Start: cfg.GridStart, Stop: cfg.GridStop, Step: cfg.GridStep}

	var (
		evaluations []threshold.Evaluation
		selections  []threshold.Selection
	)
	if *serverURL != "" {
		if topIgnored(*serverURL, *topN) {
			log.Warn().Int("top", *topN).Msg("-top needs every candidate score, which the server does not return; ignoring it")
		}
		selections, err = selectRemote(ctx, cfg, split, strategies, grid)
		if err != nil {
			log.Fatal().Err(err).Str("server", *serverURL).Msg("Remote threshold selection failed")
		}
	} else {
		selector := threshold.NewSelector(
			threshold.WithGrid(grid),
			threshold.WithWorkers(cfg.GridWorkers),
		)
		for _, strategy := range strategies {
			e, err := selector.Evaluate(strategy, split.Labels, split.Scores)
			if err != nil {
				log.Fatal().Err(err).Str("strategy", string(strategy)).Msg("Threshold selection failed")
			}
			evaluations = append(evaluations, e)
			selections = append(selections, e.Selection)
		}
	}

	defaultF1, err := curve.F1Score(split.Labels, curve.ToLabels(split.Scores, threshold.DefaultThreshold))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to score the default threshold")
	}

	out := report{
		SelectResponse: api.SelectResponse{
			Selections: threshold.NewResults(selections),
			Samples:    split.Len(),
			Positives:  split.Positives(),
			NoSkill:    curve.NoSkill(split.Labels),
		},
		DefaultThreshold: threshold.DefaultThreshold,
		DefaultFScore:    defaultF1,
	}

	if *jsonOutput {
		b, err := sonic.ConfigDefault.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode report")
		}
		fmt.Println(string(b))
		return
	}

	fmt.Printf("Samples=%d, Positives=%d, No Skill=%.3f\n", out.Samples, out.Positives, out.NoSkill)
	fmt.Printf("Default Threshold=%.1f, F-Score=%.5f\n", out.DefaultThreshold, out.DefaultFScore)
	if err := threshold.WriteReport(os.Stdout, selections); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}
	if *topN > 0 {
		for _, e := range evaluations {
			if err := threshold.WriteRanking(os.Stdout, string(e.Strategy), e.Thresholds, e.Scores, *topN); err != nil {
				log.Fatal().Err(err).Msg("Failed to write ranking")
			}
		}
	}
}

// resolveStrategies prefers the flag over the environment default.
func resolveStrategies(flagValue, envValue string) ([]threshold.Strategy, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" || strings.EqualFold(name, api.StrategyAll) {
		return threshold.Strategies, nil
	}
	strategy, err := threshold.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []threshold.Strategy{strategy}, nil
}

// topIgnored reports whether -top is set for a remote run, whose responses
// carry only the winning candidate.
func topIgnored(server string, top int) bool {
	return server != "" && top > 0
}

// selectRemote runs every strategy through the API, one request each.
func selectRemote(
	ctx context.Context,
	cfg *config.AppConfig,
	split dataset.Split,
	strategies []threshold.Strategy,
	grid threshold.Grid,
) ([]threshold.Selection, error) {
	client, err := api.NewClient(&api.ClientConfig{
		BaseURL:         *serverURL,
		Timeout:         cfg.ClientTimeout,
		RetryMax:        cfg.RetryMax,
		RetryWait:       cfg.RetryWait,
		ZstdCompression: true,
	})
	if err != nil {
		return nil, err
	}
	defer client.Close()

	selections := make([]threshold.Selection, 0, len(strategies))
	for _, strategy := range strategies {
		resp, err := client.Select(ctx, api.SelectRequest{
			Strategy: string(strategy),
			Labels:   split.Labels,
			Scores:   split.Scores,
			Grid:     &grid,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strategy, err)
		}
		for _, r := range resp.Selections {
			selections = append(selections, r.Selection())
		}
	}
	return selections, nil
}
