package service

import "github.com/certsprint/ppt-lms-backend/internal/model"

// StaticFallbackQuestions returns the hardcoded question set used whenever
// the pool query fails or yields fewer usable questions than the minimum
// viable count. The content is fixed: 10 multiple choice and 5 performance
// tasks covering the core exam domains. Treat this as configuration data.
func StaticFallbackQuestions() []model.Question {
	return []model.Question{
		{
			ID:     1,
			Domain: "Manage Presentations",
			Text:   "Which view should you use to reorder slides quickly by dragging them?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Normal view",
				"B": "Slide Sorter view",
				"C": "Reading view",
				"D": "Notes Page view",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     2,
			Domain: "Manage Presentations",
			Text:   "What does the Slide Master control?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "The order in which slides print",
				"B": "The default layout, fonts, and colors applied to all slides",
				"C": "Only the title slide design",
				"D": "The transition timing between slides",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     3,
			Domain: "Insert and Format Text, Shapes, and Images",
			Text:   "Which feature converts a bulleted list into a diagram with shapes and connectors?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "WordArt",
				"B": "Clip Art",
				"C": "Convert to SmartArt",
				"D": "Format Painter",
			},
			CorrectAnswer: "C",
			Points:        10,
		},
		{
			ID:     4,
			Domain: "Insert and Format Text, Shapes, and Images",
			Text:   "To keep a picture's proportions while resizing, which key do you hold while dragging a corner handle?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Alt",
				"B": "Ctrl",
				"C": "Shift",
				"D": "Tab",
			},
			CorrectAnswer: "C",
			Points:        10,
		},
		{
			ID:     5,
			Domain: "Insert Tables, Charts, and Media",
			Text:   "Which option embeds a video so the presentation plays it without an internet connection?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Insert > Video > Online Video",
				"B": "Insert > Video > This Device",
				"C": "Insert > Link",
				"D": "Insert > Screen Recording with streaming enabled",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     6,
			Domain: "Apply Transitions and Animations",
			Text:   "Which pane lists every animation on a slide and lets you reorder them?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Selection Pane",
				"B": "Animation Pane",
				"C": "Slide Pane",
				"D": "Outline Pane",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     7,
			Domain: "Apply Transitions and Animations",
			Text:   "The Morph transition requires what between two slides to animate smoothly?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Identical slide layouts",
				"B": "At least one object in common",
				"C": "The same background style",
				"D": "Embedded fonts",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     8,
			Domain: "Manage Presentations",
			Text:   "Which feature lets you deliver a presentation with speaker notes visible only to you?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Presenter View",
				"B": "Reading View",
				"C": "Rehearse Timings",
				"D": "Slide Show Setup",
			},
			CorrectAnswer: "A",
			Points:        10,
		},
		{
			ID:     9,
			Domain: "Insert Tables, Charts, and Media",
			Text:   "After inserting a chart, where does PowerPoint store the chart's source data?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "In a linked Access database",
				"B": "In an embedded Excel worksheet",
				"C": "In the slide notes",
				"D": "In a separate CSV file",
			},
			CorrectAnswer: "B",
			Points:        10,
		},
		{
			ID:     10,
			Domain: "Manage Presentations",
			Text:   "Which command checks a presentation for hidden properties and personal information before sharing?",
			Kind:   model.QuestionKindMultipleChoice,
			Options: map[string]string{
				"A": "Inspect Document",
				"B": "Check Accessibility",
				"C": "Protect Presentation",
				"D": "Check Compatibility",
			},
			CorrectAnswer: "A",
			Points:        10,
		},
		{
			ID:     11,
			Domain: "Performance Tasks",
			Text:   "Apply a design theme and customize the color scheme.",
			Kind:   model.QuestionKindPerformance,
			Options: map[string]string{
				"A": "Completed as instructed",
				"B": "Completed with minor deviations",
				"C": "Not completed",
			},
			CorrectAnswer: "A",
			Points:        20,
			Instructions: "Open the practice deck. Apply the Facet theme to all slides, " +
				"then change the theme color scheme to Blue Warm. Verify the title " +
				"slide picks up the new scheme before marking the task complete.",
		},
		{
			ID:     12,
			Domain: "Performance Tasks",
			Text:   "Create a custom slide layout with a picture placeholder.",
			Kind:   model.QuestionKindPerformance,
			Options: map[string]string{
				"A": "Completed as instructed",
				"B": "Completed with minor deviations",
				"C": "Not completed",
			},
			CorrectAnswer: "A",
			Points:        20,
			Instructions: "Switch to Slide Master view. Insert a new layout named " +
				"'Team Photo', add a picture placeholder on the right half of the " +
				"slide, and apply the layout to a new slide in Normal view.",
		},
		{
			ID:     13,
			Domain: "Performance Tasks",
			Text:   "Add section zoom navigation to a presentation.",
			Kind:   model.QuestionKindPerformance,
			Options: map[string]string{
				"A": "Completed as instructed",
				"B": "Completed with minor deviations",
				"C": "Not completed",
			},
			CorrectAnswer: "A",
			Points:        20,
			Instructions: "Group the practice deck into three sections. On slide 1, " +
				"insert a Section Zoom for each section and arrange the thumbnails " +
				"in a horizontal row.",
		},
		{
			ID:     14,
			Domain: "Performance Tasks",
			Text:   "Animate a chart to build one series at a time.",
			Kind:   model.QuestionKindPerformance,
			Options: map[string]string{
				"A": "Completed as instructed",
				"B": "Completed with minor deviations",
				"C": "Not completed",
			},
			CorrectAnswer: "A",
			Points:        20,
			Instructions: "Select the column chart on slide 4. Apply the Wipe " +
				"entrance animation, then set Effect Options > Sequence to " +
				"'By Series' so each series appears on a separate click.",
		},
		{
			ID:     15,
			Domain: "Performance Tasks",
			Text:   "Export a presentation as a video with recorded timings.",
			Kind:   model.QuestionKindPerformance,
			Options: map[string]string{
				"A": "Completed as instructed",
				"B": "Completed with minor deviations",
				"C": "Not completed",
			},
			CorrectAnswer: "A",
			Points:        20,
			Instructions: "Use Rehearse Timings to record slide timings for the " +
				"practice deck, then export it via File > Export > Create a Video " +
				"at Full HD using the recorded timings.",
		},
	}
}
