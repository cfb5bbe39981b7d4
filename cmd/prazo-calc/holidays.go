package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/prazo-calc/internal/deadline"
	"github.com/username/prazo-calc/pkg/dateutil"
)

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Lista os feriados do calendário configurado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = dateutil.Today().Year()
			}

			cal, err := initializeCalendar(cfg)
			if err != nil {
				return err
			}

			holidays, err := cal.Holidays(cmd.Context(), year)
			if err != nil {
				return fmt.Errorf("failed to list holidays: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📅 Feriados de %d (%d)\n", year, len(holidays))
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, h := range holidays {
				fmt.Fprintf(out, "  %s | %-13s | %s (%s)\n",
					h.Date.Format(dateutil.BrazilianLayout),
					deadline.WeekdayName(h.Date.Weekday()),
					h.Name,
					h.Source)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to list (default: current year)")

	return cmd
}
