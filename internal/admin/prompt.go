package admin

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/spf13/cobra"
)

// promptCmd prints the writing prompt every client shows on a given day.
func promptCmd(now func() time.Time) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the daily writing prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := now()
			if date != "" {
				t, err := time.Parse(common.DayLayout, date)
				if err != nil {
					return fmt.Errorf("%w: --date must be YYYY-MM-DD", common.ErrorValidation)
				}
				day = t
			}
			text, idx := diary.DailyPrompt(day)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  #%d  %s\n", day.Format(common.DayLayout), idx, text)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")
	return cmd
}
