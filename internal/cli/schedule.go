package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

func newDaysCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the conference days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			sched, err := a.schedule.GetSchedule(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, day := range sched.AvailableDays {
				n := len(schedule.TalksForDay(sched.Talks, day))
				fmt.Fprintf(out, "%s\t%d talks\n", day, n)
			}
			return nil
		},
	}
}

func newDayCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "day [DATE]",
		Short: "Print the schedule of one day",
		Long: `day prints the talks of DATE (YYYY-MM-DD) grouped by stage. An absent or
unknown DATE selects the first conference day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			sched, err := a.schedule.GetSchedule(cmd.Context())
			if err != nil {
				return err
			}
			q := url.Values{}
			if len(args) == 1 {
				q.Set(schedule.DayQueryParam, args[0])
			}
			v := schedule.NewView(sched, schedule.NewMemoryQuery(q), schedule.ViewOptions{Clock: a.clock, DemoMode: a.cfg.DemoMode})
			defer v.Close()
			v.Activate(cmd.Context())
			return printDay(cmd.OutOrStdout(), v.Snapshot())
		},
	}
}

func printDay(w io.Writer, day domain.DaySchedule) error {
	fmt.Fprintf(w, "%s (%s)\n", day.ActiveDay, day.TimeZone)
	fmt.Fprintf(w, "grid %s - %s\n", schedule.FormatHour(day.TimeRange.Start), schedule.FormatHour(day.TimeRange.End))
	if day.TimeLine.Visible && day.TimeLine.Now != nil {
		fmt.Fprintf(w, "now %s\n", day.TimeLine.Now.Format("15:04"))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, col := range day.Columns {
		if len(col.Cards) == 0 {
			continue
		}
		fmt.Fprintf(tw, "\n%s\n", col.Stage.Name)
		for _, card := range col.Cards {
			t := card.Talk
			names := make([]string, 0, len(t.Speakers))
			for _, sp := range t.Speakers {
				names = append(names, sp.Name)
			}
			fmt.Fprintf(tw, "  %s-%s\t%s\t%s\t%s\n",
				t.Start.Format("15:04"), t.End.Format("15:04"), card.Type.Label, t.Title, strings.Join(names, ", "))
		}
	}
	return tw.Flush()
}

func newICSCommand(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the schedule as iCalendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return a.schedule.WriteCalendar(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := a.schedule.WriteCalendar(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
