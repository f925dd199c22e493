package models

type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ParseKind accepts "", "text", "image" and "video". The empty kind means no
// kind filter.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case "", KindText, KindImage, KindVideo:
		return k, true
	}
	return "", false
}

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Start       LocalTime `json:"start"`
	End         LocalTime `json:"end"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	VideoURL    string    `json:"videoUrl"`
}

// Kind is derived from the media fields. An image URL wins over a video URL.
func (e Event) Kind() Kind {
	switch {
	case e.ImageURL != "":
		return KindImage
	case e.VideoURL != "":
		return KindVideo
	default:
		return KindText
	}
}

// Draft returns the editable fields of e.
func (e Event) Draft() EventDraft {
	return EventDraft{
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		VideoURL:    e.VideoURL,
	}
}

// EventDraft is the request body of create and update calls.
type EventDraft struct {
	Title       string    `json:"title" validate:"required"`
	Start       LocalTime `json:"start"`
	End         LocalTime `json:"end"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
	VideoURL    string    `json:"videoUrl" validate:"omitempty,url"`
}
