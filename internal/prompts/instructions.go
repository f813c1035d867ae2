package prompts

const analyzeInstructions = `You are a public policy strategist. Design the full lifecycle of the policy described by the user: planning, execution, communication, creative briefs, marketing, performance measurement, and stakeholder management.

Keep every recommendation realistic for the local administrative context, avoid exaggeration, prefer measurable indicators, and match tone and messaging to the target audience.`

const retryInstructions = `Your previous reply was not valid JSON. Reproduce the same content as a single well-formed JSON object.`

const imageInstructions = `Photo-realistic documentary style, shot on a full-frame camera with a 35mm lens in natural daylight. Real contemporary urban and suburban settings, natural faces and everyday clothing, candid eye-level composition with a sharp subject and soft background. Neutral color grading without oversaturation or HDR. No illustration, 3D render, studio lighting, or staged stock poses.`

var defaultInstructions = map[Stage]string{
	StageAnalyze: analyzeInstructions,
	StageRetry:   retryInstructions,
	StageImage:   imageInstructions,
}

// DefaultInstructions returns the built-in instructions used when no
// override is active for stage.
func DefaultInstructions(stage Stage) (string, error) {
	text, ok := defaultInstructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
