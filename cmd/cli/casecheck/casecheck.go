// Package casecheck holds CLI commands for validating the authored casefile before a deploy.
package casecheck

import (
	"fmt"
	"github.com/lkarjala/vaelor/internal/casefile"
	"github.com/lkarjala/vaelor/internal/repositories"
	"github.com/lkarjala/vaelor/internal/ritual"
	"github.com/lkarjala/vaelor/internal/sqlite"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"text/tabwriter"
)

var Group = &cobra.Group{
	ID:    "casecheck",
	Title: "Casefile checks",
}

var sqliteURL string

func init() {
	for _, cmd := range []*cobra.Command{Audit, Matrix} {
		cmd.Flags().StringVar(&sqliteURL, "sqlite-url", ":memory:", "SQLite URL holding the casefile")
	}
}

// openCaseRepository opens the database and returns the repository along with a close function.
func openCaseRepository(cmd *cobra.Command) (*repositories.CaseRepository, func(), error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	db, err := sqlite.NewDatabase(cmd.Context(), sqliteURL, logger)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if closeErr := db.Close(); closeErr != nil {
			_, _ = fmt.Fprintln(os.Stderr, closeErr)
		}
	}
	return repositories.NewCaseRepository(db, logger), closeDB, nil
}

var Audit = &cobra.Command{
	Use:     "audit",
	GroupID: "casecheck",
	Short:   "Audit the casefile",
	Long: `Audits the authored casefile: chamber layout, evidence weights, the replacement rule,
winnability for every culprit, and ending script coverage.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeDB, err := openCaseRepository(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		if err = casefile.Audit(cmd.Context(), repo); err != nil {
			return err
		}
		cmd.Println("casefile audit passed")
		return nil
	},
}

var Matrix = &cobra.Command{
	Use:     "matrix",
	GroupID: "casecheck",
	Short:   "Print the visibility matrix",
	Long:    "Prints the evidence every culprit draw leaves visible, chamber by chamber.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeDB, err := openCaseRepository(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		ctx := cmd.Context()
		chambers, err := repo.Chambers(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, culprit := range ritual.Suspects() {
			_, _ = fmt.Fprintf(w, "culprit: %s\n", culprit)
			for _, chamber := range chambers {
				cards, cardsErr := repo.ChamberEvidence(ctx, chamber.ID, culprit)
				if cardsErr != nil {
					return cardsErr
				}
				for _, card := range cards {
					implicates := "-"
					if card.Implicates != nil {
						implicates = card.Implicates.String()
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
						chamber.ID, card.Item.ID, card.Item.Weight, implicates)
				}
			}
			_, _ = fmt.Fprintln(w)
		}
		return w.Flush()
	},
}
