package analysis

// BriefKey names an image brief slot within the content briefs section.
type BriefKey string

const (
	ImageBrief1 BriefKey = "image_brief_1"
	ImageBrief2 BriefKey = "image_brief_2"
)

// BriefKeys lists the image brief slots in render order.
func BriefKeys() []BriefKey {
	return []BriefKey{ImageBrief1, ImageBrief2}
}

// ContentBriefs carries the creative briefs used for image and video generation.
type ContentBriefs struct {
	ImageBrief1 *ImageBrief `json:"image_brief_1,omitempty"`
	ImageBrief2 *ImageBrief `json:"image_brief_2,omitempty"`
	VideoBrief  *VideoBrief `json:"video_brief,omitempty"`
}

// Image returns the brief stored under key, or nil.
func (c *ContentBriefs) Image(key BriefKey) *ImageBrief {
	if c == nil {
		return nil
	}
	switch key {
	case ImageBrief1:
		return c.ImageBrief1
	case ImageBrief2:
		return c.ImageBrief2
	}
	return nil
}

type ImageBrief struct {
	Concept          *string `json:"concept,omitempty"`
	SceneDescription *string `json:"scene_description,omitempty"`
	VisualStyle      *string `json:"visual_style,omitempty"`
	KeyMessage       *string `json:"key_message,omitempty"`
}

type VideoBrief struct {
	Duration     *string `json:"duration,omitempty"`
	NarrativeArc *string `json:"narrative_arc,omitempty"`
	Scenes       []Scene `json:"scenes,omitempty"`
	StyleGuide   *string `json:"style_guide,omitempty"`
	CallToAction *string `json:"call_to_action,omitempty"`
}

type Scene struct {
	Timestamp *string `json:"timestamp,omitempty"`
	Scene     *string `json:"scene,omitempty"`
	Visuals   *string `json:"visuals,omitempty"`
	Audio     *string `json:"audio,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// VideoPromptSet holds the three ten-second video prompt styles generated
// from a single video brief.
type VideoPromptSet struct {
	Documentary   string `json:"documentary"`
	Cinematic     string `json:"cinematic"`
	ModernDynamic string `json:"modern_dynamic"`
}

// Texts flattens the set in documentary, cinematic, modern dynamic order,
// skipping empty styles.
func (v VideoPromptSet) Texts() []string {
	texts := make([]string, 0, 3)
	for _, t := range []string{v.Documentary, v.Cinematic, v.ModernDynamic} {
		if t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}
