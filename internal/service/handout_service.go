package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/repository"
)

// ErrHandoutNotFound is returned for an unknown handout week.
var ErrHandoutNotFound = errors.New("handout not found")

// HandoutPage is a handout plus the per-request user and instructor data
// the page shows alongside the content.
type HandoutPage struct {
	Handout    model.Handout     `json:"handout"`
	Student    *model.User       `json:"student,omitempty"`
	Instructor *model.Instructor `json:"instructor,omitempty"`
}

// HandoutService serves the weekly course handout pages. Handout content is
// static course material; user and instructor details are loaded per
// request. An instructor lookup failure degrades the page rather than
// failing it.
type HandoutService struct {
	userRepo  *repository.UserRepository
	classRepo *repository.ClassRepository
	log       zerolog.Logger
}

// NewHandoutService creates a new HandoutService.
func NewHandoutService(userRepo *repository.UserRepository, classRepo *repository.ClassRepository, log zerolog.Logger) *HandoutService {
	return &HandoutService{
		userRepo:  userRepo,
		classRepo: classRepo,
		log:       log.With().Str("component", "handout_service").Logger(),
	}
}

// List returns handout metadata for every week, without content sections.
func (s *HandoutService) List(ctx context.Context) []model.Handout {
	weeks := courseHandouts()
	out := make([]model.Handout, len(weeks))
	for i, h := range weeks {
		h.Sections = nil
		out[i] = h
	}
	return out
}

// GetPage returns one week's handout with the requesting user's profile and
// their class instructor attached.
func (s *HandoutService) GetPage(ctx context.Context, week, userID int) (*HandoutPage, error) {
	var handout *model.Handout
	for _, h := range courseHandouts() {
		if h.Week == week {
			handout = &h
			break
		}
	}
	if handout == nil {
		return nil, ErrHandoutNotFound
	}

	page := &HandoutPage{Handout: *handout}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	page.Student = user

	if user.ClassID != nil {
		instructor, err := s.classRepo.GetInstructor(ctx, *user.ClassID)
		if err != nil {
			s.log.Warn().Err(err).Int("class_id", *user.ClassID).Msg("Instructor lookup failed")
		} else {
			page.Instructor = instructor
		}
	}

	return page, nil
}

// courseHandouts is the static weekly content of the PowerPoint
// certification course. Configuration data, mirrored from the syllabus.
func courseHandouts() []model.Handout {
	return []model.Handout{
		{
			Week:    1,
			Title:   "Getting Around PowerPoint",
			Summary: "Interface tour, views, and presentation file management.",
			Topics:  []string{"Ribbon and Backstage", "Normal vs Slide Sorter view", "Saving and exporting"},
			Sections: []model.HandoutSection{
				{Heading: "The Ribbon", Body: "The ribbon groups commands into task-oriented tabs. Home carries the everyday formatting tools; Insert adds objects; Design controls themes."},
				{Heading: "Views", Body: "Normal view is for editing one slide at a time. Slide Sorter shows the whole deck as thumbnails and is the fastest way to reorder slides."},
			},
		},
		{
			Week:    2,
			Title:   "Slide Design and Masters",
			Summary: "Themes, variants, slide masters, and custom layouts.",
			Topics:  []string{"Applying themes", "Slide Master view", "Custom layouts and placeholders"},
			Sections: []model.HandoutSection{
				{Heading: "Slide Masters", Body: "Every deck has one slide master per theme. Edits to the master cascade to its layouts and through them to every slide, which keeps formatting consistent."},
			},
		},
		{
			Week:    3,
			Title:   "Text, Shapes, and Images",
			Summary: "Text boxes, WordArt, shape formatting, and picture tools.",
			Topics:  []string{"Text formatting", "Shape merge operations", "Picture corrections and crop"},
		},
		{
			Week:    4,
			Title:   "Tables, Charts, and SmartArt",
			Summary: "Structured content: tables, embedded charts, and diagrams.",
			Topics:  []string{"Table styles", "Chart types and source data", "Convert text to SmartArt"},
		},
		{
			Week:    5,
			Title:   "Media and Links",
			Summary: "Audio, video, screen recordings, and hyperlink navigation.",
			Topics:  []string{"Embedding video", "Trim and playback options", "Action buttons and zoom"},
		},
		{
			Week:    6,
			Title:   "Transitions and Animations",
			Summary: "Slide transitions, object animations, and the Animation Pane.",
			Topics:  []string{"Morph transition", "Entrance, emphasis, exit", "Animation timing and triggers"},
		},
		{
			Week:    7,
			Title:   "Delivery and Collaboration",
			Summary: "Presenter View, rehearsal, comments, and co-authoring.",
			Topics:  []string{"Presenter View", "Rehearse timings", "Sharing and comments"},
		},
		{
			Week:    8,
			Title:   "Exam Preparation",
			Summary: "Exam format, scoring, and the mock exam simulator.",
			Topics:  []string{"Question formats", "Performance tasks", "Timing strategy"},
		},
	}
}
