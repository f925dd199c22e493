package main

import (
	"eventCalendar/internal/calendar"
	"fmt"
	"github.com/spf13/cobra"
	"net/url"
	"time"
)

type filterFlags struct {
	search string
	kind   string
	from   string
	to     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "title substring, case-insensitive")
	cmd.Flags().StringVar(&f.kind, "type", "", "event type: text, image or video")
	cmd.Flags().StringVar(&f.from, "from", "", "earliest start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.to, "to", "", "latest end date, YYYY-MM-DD")
}

func (f filterFlags) criteria() (calendar.Criteria, error) {
	v := url.Values{}
	for key, val := range map[string]string{
		calendar.ParamSearch: f.search,
		calendar.ParamType:   f.kind,
		calendar.ParamFrom:   f.from,
		calendar.ParamTo:     f.to,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}

	return calendar.ParseCriteria(v, time.Local)
}

func newMonthCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := filters.criteria()
			if err != nil {
				return err
			}

			ref, err := a.reference(a.now())
			if err != nil {
				return err
			}

			state, err := a.load(cmd.Context(), ref, c)
			if err != nil {
				return err
			}

			for ; offset > 0; offset-- {
				state = state.NextMonth()
			}
			for ; offset < 0; offset++ {
				state = state.PrevMonth()
			}

			return renderMonth(a.out, state.Month(), a.now(), a.palette())
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&offset, "offset", 0, "months to move forward (negative: back)")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := filters.criteria()
			if err != nil {
				return err
			}

			state, err := a.load(cmd.Context(), a.now(), c)
			if err != nil {
				return err
			}

			events := state.Filtered()
			if len(events) == 0 {
				fmt.Fprintln(a.out, "No events.")
				return nil
			}

			return renderList(a.out, events)
		},
	}

	filters.register(cmd)

	return cmd
}
