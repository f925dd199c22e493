package main

import (
	"context"
	"eventCalendar/internal/calendar"
	"eventCalendar/internal/client"
	"eventCalendar/internal/lib/logger/handlers/slogdiscard"
	"eventCalendar/internal/lib/logger/handlers/slogpretty"
	"eventCalendar/internal/lib/logger/sl"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"time"
)

const monthLayout = "2006-01"

// app is the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	server    string
	weekStart string
	month     string
	timeout   time.Duration
	noColor   bool
	verbose   bool

	log      *slog.Logger
	client   *client.Client
	firstDay time.Weekday
}

func newRootCmd(out, errOut io.Writer, now func() time.Time) *cobra.Command {
	a := &app{out: out, errOut: errOut, now: now}

	root := &cobra.Command{
		Use:          "calctl",
		Short:        "Browse and edit the event calendar",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.server, "server", envOr("CALCTL_SERVER", client.DefaultBaseURL), "backend base URL")
	flags.StringVar(&a.weekStart, "week-start", envOr("CALCTL_WEEK_START", "sunday"), "first day of the week")
	flags.StringVar(&a.month, "month", "", "month to show, YYYY-MM (default: current)")
	flags.DurationVar(&a.timeout, "timeout", 10*time.Second, "request timeout")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newMonthCmd(a),
		newListCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
	)

	return root
}

func (a *app) setup() error {
	day, err := calendar.ParseWeekday(a.weekStart)
	if err != nil {
		return fmt.Errorf("invalid --week-start: %w", err)
	}
	a.firstDay = day

	if a.verbose {
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
		}
		a.log = slog.New(opts.NewPrettyHandler(a.errOut))
	} else {
		a.log = slogdiscard.NewDiscardLogger()
	}

	a.client = client.New(a.server, client.WithTimeout(a.timeout))

	return nil
}

// reference is the month named by --month, or fallback when unset.
func (a *app) reference(fallback time.Time) (time.Time, error) {
	if a.month == "" {
		return fallback, nil
	}

	t, err := time.ParseInLocation(monthLayout, a.month, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --month %q, expected YYYY-MM", a.month)
	}

	return t, nil
}

// load fetches the event list and builds the view state from it.
func (a *app) load(ctx context.Context, ref time.Time, c calendar.Criteria) (calendar.State, error) {
	const op = "calctl.load"

	log := a.log.With(slog.String("op", op))

	events, err := a.client.ListEvents(ctx)
	if err != nil {
		log.Error("failed to fetch events", sl.Err(err))
		return calendar.State{}, fmt.Errorf("fetch events: %w", err)
	}

	log.Debug("events fetched", slog.Int("count", len(events)))

	return calendar.NewState(ref, a.firstDay).WithEvents(events).WithCriteria(c), nil
}

// refresh refetches after a mutation and re-renders the month of ref.
func (a *app) refresh(ctx context.Context, ref time.Time) error {
	state, err := a.load(ctx, ref, calendar.Criteria{})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	return renderMonth(a.out, state.Month(), a.now(), a.palette())
}

func (a *app) palette() palette {
	return newPalette(a.noColor)
}

func (a *app) printFieldErrors(fields map[string]string) {
	for _, line := range fieldErrorLines(fields) {
		fmt.Fprintln(a.errOut, line)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
