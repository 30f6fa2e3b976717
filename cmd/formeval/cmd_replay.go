package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/config"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/engine"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/exercises"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/recording"
)

var (
	replayExercise string
	replayJSON     bool
	replayWorkers  int
)

func newReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <recording.jsonl...>",
		Short: "Replay recorded sessions through the evaluation engine",
		Long: `Replay one or more JSONL frame recordings through the form evaluation
engine and print a per-session summary.

Each recording is scored as an independent session: frames are evaluated in
order, repetitions counted by the exercise's phase machine, and the session
summary aggregates the retained frame scores. Files ending in .gz are
decompressed transparently.

Exercise tolerances can be overridden per exercise in .formeval.yaml; the
replay defaults (exercise, workers, confidence level) come from the same
file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: replayCommandE,
	}

	cmd.Flags().StringVarP(&replayExercise, "exercise", "e", "", "Exercise type: squat | pushup | curl | lateral_raise | shoulder_press")
	cmd.Flags().BoolVar(&replayJSON, "json", false, "Emit session results as JSON")
	cmd.Flags().IntVar(&replayWorkers, "workers", 0, "Max recordings processed concurrently (default from config)")

	return cmd
}

// sessionReport pairs a recording path with its finished session result.
type sessionReport struct {
	File   string               `json:"file"`
	Result models.SessionResult `json:"result"`
}

func replayCommandE(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	name := replayExercise
	if name == "" {
		name = cfg.Replay.Exercise
	}
	exercise, err := exercises.ParseType(name)
	if err != nil {
		return err
	}

	workers := replayWorkers
	if workers <= 0 {
		workers = cfg.Replay.Workers
	}

	reports := make([]sessionReport, len(args))

	var group errgroup.Group
	group.SetLimit(workers)
	for i, path := range args {
		group.Go(func() error {
			result, err := replayFile(path, exercise, cfg)
			if err != nil {
				return err
			}
			reports[i] = sessionReport{File: path, Result: result}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if replayJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	printSessionTable(cmd.OutOrStdout(), reports)
	return nil
}

// replayFile runs one recording through a fresh session. Sessions are never
// shared between goroutines.
func replayFile(path string, exercise exercises.Type, cfg *config.Config) (models.SessionResult, error) {
	frames, err := recording.ReadFile(path)
	if err != nil {
		return models.SessionResult{}, err
	}

	ev, err := exercises.Create(exercise, cfg.Params(string(exercise)))
	if err != nil {
		return models.SessionResult{}, fmt.Errorf("creating %s evaluator: %w", exercise, err)
	}

	session := engine.NewWithConfidence(ev, cfg.Replay.ConfidenceLevel)
	for _, f := range frames {
		session.Process(f)
	}
	return session.Finish(), nil
}
