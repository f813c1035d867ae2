package prompts

const analyzeSpec = `Respond with one JSON object and nothing else, using exactly these keys:

{
  "policy_planning": {
    "objective": "3-5 sentences",
    "target_analysis": "needs, traits, and approach in 3-5 sentences",
    "key_strategies": ["5-8 items"],
    "expected_outcomes": ["5-7 items"],
    "timeline": {"preparation": "", "pilot": "", "expansion": ""}
  },
  "execution_plan": {
    "action_items": [{"phase": "", "action": "", "responsible": "", "timeline": ""}],
    "resources_needed": {"budget_range": "a range, not an exact figure", "personnel": "", "infrastructure": ""},
    "risk_management": [{"risk": "", "impact": "", "mitigation": ""}]
  },
  "communication_strategy": {
    "key_messages": ["5-8 items"],
    "channels": [{"channel": "", "content_type": "", "frequency": ""}],
    "target_specific_messages": {"citizens": "", "youth": "", "elderly": "", "parents": ""}
  },
  "content_briefs": {
    "image_brief_1": {"concept": "", "scene_description": "", "visual_style": "", "key_message": ""},
    "image_brief_2": {"concept": "", "scene_description": "", "visual_style": "", "key_message": ""},
    "video_brief": {
      "duration": "",
      "narrative_arc": "5-8 sentences",
      "scenes": [{"timestamp": "", "scene": "", "visuals": "", "audio": "", "message": ""}],
      "style_guide": "",
      "call_to_action": ""
    }
  },
  "marketing_materials": {
    "slogan": "",
    "tagline": "",
    "elevator_pitch": "",
    "press_release": "",
    "social_media_posts": [{"platform": "", "content": "", "hashtags": [""]}],
    "faq": [{"question": "", "answer": ""}]
  },
  "performance_metrics": {
    "kpi_framework": [{"category": "", "metric": "", "measurement_method": "", "target_range": "", "data_source": ""}],
    "success_criteria": ["5-7 items"],
    "monitoring_plan": {"daily": "", "weekly": "", "monthly": ""},
    "improvement_triggers": ["5-7 items"]
  },
  "stakeholder_management": {
    "stakeholders": [{"group": "", "interests": "", "engagement_strategy": ""}],
    "objection_handling": [{"objection": "", "response": ""}]
  }
}`

const retrySpec = `Output only the JSON object. No markdown fences, commentary, or trailing text.`

const imageSpec = `No text, letters, or signage anywhere in the image. People must have natural, undistorted features and genuine expressions.`

var specs = map[Stage]string{
	StageAnalyze: analyzeSpec,
	StageRetry:   retrySpec,
	StageImage:   imageSpec,
}

// Spec returns the fixed output contract for stage. Specs cannot be overridden.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
