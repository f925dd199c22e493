package main

import (
	"errors"
	"eventCalendar/internal/calendar"
	"eventCalendar/internal/client"
	"eventCalendar/internal/models"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

var errInvalidDraft = errors.New("event is invalid, nothing was sent")

type draftFlags struct {
	title       string
	start       string
	end         string
	description string
	imageURL    string
	videoURL    string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "event title")
	cmd.Flags().StringVar(&f.start, "start", "", "start, YYYY-MM-DDTHH:mm")
	cmd.Flags().StringVar(&f.end, "end", "", "end, YYYY-MM-DDTHH:mm")
	cmd.Flags().StringVar(&f.description, "description", "", "free text")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "image URL")
	cmd.Flags().StringVar(&f.videoURL, "video-url", "", "video URL")
}

// apply overwrites the fields of base whose flags were given.
func (f draftFlags) apply(cmd *cobra.Command, base models.EventDraft) (models.EventDraft, error) {
	changed := cmd.Flags().Changed

	if changed("title") {
		base.Title = f.title
	}
	if changed("description") {
		base.Description = f.description
	}
	if changed("image-url") {
		base.ImageURL = f.imageURL
	}
	if changed("video-url") {
		base.VideoURL = f.videoURL
	}

	var err error
	if changed("start") {
		if base.Start, err = parseFlagTime("start", f.start); err != nil {
			return base, err
		}
	}
	if changed("end") {
		if base.End, err = parseFlagTime("end", f.end); err != nil {
			return base, err
		}
	}

	return base, nil
}

func parseFlagTime(name, value string) (models.LocalTime, error) {
	if value == "" {
		return models.LocalTime{}, nil
	}

	t, err := models.ParseLocalTime(value, time.Local)
	if err != nil {
		return models.LocalTime{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DDTHH:mm", name, value)
	}

	return t, nil
}

// check runs the form validation locally and prints one line per field.
func (a *app) check(d models.EventDraft) error {
	fields := calendar.ValidateDraft(d)
	if len(fields) == 0 {
		return nil
	}

	a.printFieldErrors(fields)
	return errInvalidDraft
}

// backendError prints the field errors carried by a 400 answer.
func (a *app) backendError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		a.printFieldErrors(apiErr.Fields)
	}
	return err
}

func newAddCmd(a *app) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := flags.apply(cmd, models.EventDraft{})
			if err != nil {
				return err
			}

			if err := a.check(draft); err != nil {
				return err
			}

			event, err := a.client.CreateEvent(cmd.Context(), draft)
			if err != nil {
				return a.backendError(err)
			}

			fmt.Fprintf(a.out, "Event %d %q created.\n", event.ID, event.Title)

			ref, err := a.reference(event.Start.Time)
			if err != nil {
				return err
			}

			return a.refresh(cmd.Context(), ref)
		},
	}

	flags.register(cmd)

	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an event; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.client.GetEvent(cmd.Context(), id)
			if err != nil {
				return a.backendError(err)
			}

			draft, err := flags.apply(cmd, current.Draft())
			if err != nil {
				return err
			}

			if err := a.check(draft); err != nil {
				return err
			}

			event, err := a.client.UpdateEvent(cmd.Context(), id, draft)
			if err != nil {
				return a.backendError(err)
			}

			fmt.Fprintf(a.out, "Event %d %q updated.\n", event.ID, event.Title)

			ref, err := a.reference(event.Start.Time)
			if err != nil {
				return err
			}

			return a.refresh(cmd.Context(), ref)
		},
	}

	flags.register(cmd)

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.client.DeleteEvent(cmd.Context(), id); err != nil {
				return a.backendError(err)
			}

			fmt.Fprintf(a.out, "Event %d deleted.\n", id)

			ref, err := a.reference(a.now())
			if err != nil {
				return err
			}

			return a.refresh(cmd.Context(), ref)
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", s)
	}
	return id, nil
}
