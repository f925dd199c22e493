package calendar

import (
	"errors"
	"eventCalendar/internal/models"
	"github.com/go-playground/validator/v10"
	"reflect"
	"strings"
)

// Field keys of ValidateDraft results.
const (
	FieldTitle    = "title"
	FieldDates    = "dates"
	FieldImageURL = "imageUrl"
	FieldVideoURL = "videoUrl"
)

var draftMessages = map[string]string{
	FieldTitle:    "Event title is required",
	FieldImageURL: "Invalid image URL format",
	FieldVideoURL: "Invalid video URL format",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateDraft maps each offending field to a message. An empty map means the
// draft may be submitted.
func ValidateDraft(d models.EventDraft) map[string]string {
	errs := make(map[string]string)

	d.Title = strings.TrimSpace(d.Title)

	if err := validate.Struct(d); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			for _, fe := range validateErr {
				if msg, ok := draftMessages[fe.Field()]; ok {
					errs[fe.Field()] = msg
				}
			}
		}
	}

	switch {
	case d.Start.IsZero() || d.End.IsZero():
		errs[FieldDates] = "Start and End dates are required"
	case !d.Start.Before(d.End.Time):
		errs[FieldDates] = "End date must be after Start date"
	}

	if d.ImageURL != "" && d.VideoURL != "" {
		if _, ok := errs[FieldVideoURL]; !ok {
			errs[FieldVideoURL] = "Only one of image or video URL may be set"
		}
	}

	return errs
}
