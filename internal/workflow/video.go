package workflow

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/sedam/internal/analysis"
)

type videoStyle struct {
	title  string
	visual []string
	camera []string
	audio  []string
	mood   string
	pacing string
	tech   string
}

var (
	documentary = videoStyle{
		title:  "Style 1: Documentary realism",
		visual: []string{"Handheld feel with natural movement", "Realistic lighting and observational framing", "Natural color grade, slightly desaturated"},
		camera: []string{"Medium shots and close-ups", "Follow subjects naturally"},
		audio:  []string{"Ambient city sound", "Minimal music", "Natural dialogue or voice-over"},
		mood:   "Authentic, grounded, trustworthy",
		pacing: "Steady, observational",
		tech:   "24fps, documentary style",
	}
	cinematic = videoStyle{
		title:  "Style 2: Cinematic drama",
		visual: []string{"Smooth gimbal and slider movement", "Dramatic warm and cool lighting", "Rich cinematic color grade"},
		camera: []string{"Wide establishing shots", "Slow push-ins and reveals", "Aerial city shots"},
		audio:  []string{"Emotional score", "Designed sound effects", "Polished narration"},
		mood:   "Inspiring, emotional, aspirational",
		pacing: "Dynamic with emotional beats",
		tech:   "24fps, anamorphic feel",
	}
	modernDynamic = videoStyle{
		title:  "Style 3: Modern dynamic",
		visual: []string{"Fast cuts", "Bright contemporary lifestyle scenes", "Vibrant saturated grade"},
		camera: []string{"Quick multi-angle cuts", "City time-lapse", "Match cuts for rhythm"},
		audio:  []string{"Upbeat modern music", "Rhythmic sound design synced to cuts"},
		mood:   "Energetic, modern, forward-thinking",
		pacing: "Fast, rhythmic",
		tech:   "30fps with slow-motion accents",
	}
)

// VideoPrompts builds the three ten-second prompt styles from a video brief.
// A nil brief yields prompts with empty narrative and call to action.
func VideoPrompts(brief *analysis.VideoBrief) analysis.VideoPromptSet {
	var narrative, cta string
	if brief != nil {
		narrative = analysis.Text(brief.NarrativeArc)
		cta = analysis.Text(brief.CallToAction)
	}

	return analysis.VideoPromptSet{
		Documentary:   documentary.render(narrative, cta),
		Cinematic:     cinematic.render(narrative, cta),
		ModernDynamic: modernDynamic.render(narrative, cta),
	}
}

func (s videoStyle) render(narrative, cta string) string {
	var sb strings.Builder
	list := func(label string, items []string) {
		sb.WriteString(label + ":\n")
		for _, it := range items {
			sb.WriteString("- " + it + "\n")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "[%s]\n\n", s.title)
	sb.WriteString("Duration: 10 seconds\nLocation: contemporary city setting\nNo on-screen text other than subtitles\n\n")
	list("Visual style", s.visual)
	list("Camera", s.camera)
	list("Audio", s.audio)
	fmt.Fprintf(&sb, "Narrative: %s\n\n", narrative)
	fmt.Fprintf(&sb, "Mood: %s\nPacing: %s\nFinal message: %s\n\n", s.mood, s.pacing, cta)
	fmt.Fprintf(&sb, "Technical: %s", s.tech)
	return sb.String()
}
