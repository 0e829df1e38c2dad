package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/storage"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "List recorded rollout episodes",
	RunE:  runEpisodesList,
}

var episodesShowCmd = &cobra.Command{
	Use:   "show <episode-id>",
	Short: "Show the steps of a recorded episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodesShow,
}

var episodesLimit int

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.AddCommand(episodesShowCmd)
	episodesCmd.Flags().IntVarP(&episodesLimit, "limit", "n", 20, "Maximum episodes to list")
}

func runEpisodesList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewEpisodeRepository(db)
	episodes, err := repo.List(episodesLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(episodes) == 0 {
		fmt.Fprintln(out, "No episodes recorded. Run one with: piececube rollout")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-19s  %6s  %9s  %s\n", "ID", "STARTED", "STEPS", "REWARD", "SOLVED")
	for _, e := range episodes {
		fmt.Fprintf(out, "%-36s  %-19s  %6d  %9.2f  %v\n",
			e.EpisodeID, e.StartedAt.Local().Format(time.DateTime), e.StepCount, e.TotalReward, e.Solved)
	}

	solved, total, err := repo.SolvedCount()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSolved %d of %d recorded episodes\n", solved, total)
	return nil
}

func runEpisodesShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	episode, err := storage.NewEpisodeRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	steps, err := storage.NewStepRepository(db).GetByEpisode(episode.EpisodeID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Episode: %s\n", episode.EpisodeID)
	fmt.Fprintf(out, "Policy: %s\n", episode.Policy)
	fmt.Fprintf(out, "Scramble: %s\n", episode.ScrambleText)
	fmt.Fprintf(out, "Steps: %d  Reward: %.2f  Solved: %v\n\n", episode.StepCount, episode.TotalReward, episode.Solved)

	for _, s := range steps {
		fmt.Fprintf(out, "%4d  %-2s  %+.2f\n", s.StepIndex, s.Turn, s.Reward)
	}
	return nil
}
