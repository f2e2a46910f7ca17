package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-builder/internal/score"
	"cv-builder/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score <snapshot.json>",
	Short: "Score a saved session snapshot",
	Long:  "Evaluates the CV in a saved snapshot on a 0-100 scale and prints the recommendations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var scoreJSON bool

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output the report as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	snap, err := readSnapshotFile(args[0])
	if err != nil {
		return err
	}

	report := score.Evaluate(snap.Data, snap.UI.ATSMode)

	if scoreJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Score : %d/100\n", report.Score)
	for _, reco := range report.Recommendations {
		fmt.Printf("- %s\n", reco)
	}
	return nil
}

// readSnapshotFile loads and validates one snapshot document from disk.
func readSnapshotFile(path string) (*store.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	snap, err := store.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return snap, nil
}
