package report

import "fmt"

// Locale selects the fixed strings printed by the renderer.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleKorean  Locale = "ko"
)

// Labels holds every fixed string the renderer prints. Section titles carry
// their fixed ordinal so numbering never shifts when a section is skipped.
type Labels struct {
	ReportTitle string
	Title       string
	Category    string
	Audience    string
	Created     string

	Planning      string
	Execution     string
	Communication string
	Briefs        string
	Marketing     string
	Metrics       string
	Stakeholders  string
	Images        string
	VideoPrompts  string

	Objective        string
	TargetAnalysis   string
	KeyStrategies    string
	ExpectedOutcomes string

	ActionItems string
	Resources   string
	Budget      string
	Personnel   string
	Risks       string
	Mitigation  string

	KeyMessages string
	Channels    string

	ImageBrief string
	Concept    string
	Scene      string
	VideoBrief string
	Story      string

	Slogan        string
	Tagline       string
	ElevatorPitch string
	SocialPosts   string

	KPIFramework    string
	Target          string
	SuccessCriteria string

	StakeholderAnalysis string
	ObjectionHandling   string
	Objection           string
	Response            string

	ImageCaption string
	VideoLabel   string
}

// EnglishLabels returns the default label set.
func EnglishLabels() Labels {
	return Labels{
		ReportTitle: "Policy Report",
		Title:       "Title: ",
		Category:    "Category: ",
		Audience:    "Audience: ",
		Created:     "Created: ",

		Planning:      "1. Policy Planning",
		Execution:     "2. Execution Plan",
		Communication: "3. Communication Strategy",
		Briefs:        "4. Content Briefs",
		Marketing:     "5. Marketing Materials",
		Metrics:       "6. Performance Metrics (KPI)",
		Stakeholders:  "7. Stakeholder Management",
		Images:        "8. Generated Images",
		VideoPrompts:  "9. Video Prompts",

		Objective:        "[Objective] ",
		TargetAnalysis:   "[Target Analysis] ",
		KeyStrategies:    "[Key Strategies]",
		ExpectedOutcomes: "[Expected Outcomes]",

		ActionItems: "[Action Items]",
		Resources:   "[Resources]",
		Budget:      "Budget: ",
		Personnel:   "Personnel: ",
		Risks:       "[Risk Management]",
		Mitigation:  "  Mitigation: ",

		KeyMessages: "[Key Messages]",
		Channels:    "[Channel Strategy]",

		ImageBrief: "[Image Brief %d]",
		Concept:    "Concept: ",
		Scene:      "Scene: ",
		VideoBrief: "[Video Brief]",
		Story:      "Story: ",

		Slogan:        "[Slogan] ",
		Tagline:       "[Tagline] ",
		ElevatorPitch: "[Elevator Pitch] ",
		SocialPosts:   "[Social Media Content]",

		KPIFramework:    "[KPI Framework]",
		Target:          "   Target: ",
		SuccessCriteria: "[Success Criteria]",

		StakeholderAnalysis: "[Stakeholder Analysis]",
		ObjectionHandling:   "[Objection Handling]",
		Objection:           "• Objection: ",
		Response:            "  Response: ",

		ImageCaption: "Image %d",
		VideoLabel:   "[Video %d]",
	}
}

// KoreanLabels returns the Korean label set. It requires a UTF-8 font with
// Hangul coverage to render legibly.
func KoreanLabels() Labels {
	return Labels{
		ReportTitle: "정책 보고서",
		Title:       "제목: ",
		Category:    "카테고리: ",
		Audience:    "대상: ",
		Created:     "생성일: ",

		Planning:      "1. 정책 기획",
		Execution:     "2. 실행 계획",
		Communication: "3. 커뮤니케이션 전략",
		Briefs:        "4. 콘텐츠 제작 브리프",
		Marketing:     "5. 마케팅 자료",
		Metrics:       "6. 성과 지표 (KPI)",
		Stakeholders:  "7. 이해관계자 관리",
		Images:        "8. 생성된 이미지",
		VideoPrompts:  "9. 영상 프롬프트",

		Objective:        "[목표] ",
		TargetAnalysis:   "[대상 분석] ",
		KeyStrategies:    "[핵심 전략]",
		ExpectedOutcomes: "[기대 효과]",

		ActionItems: "[실행 항목]",
		Resources:   "[필요 자원]",
		Budget:      "예산: ",
		Personnel:   "인력: ",
		Risks:       "[리스크 관리]",
		Mitigation:  "  완화: ",

		KeyMessages: "[핵심 메시지]",
		Channels:    "[채널 전략]",

		ImageBrief: "[이미지 브리프 %d]",
		Concept:    "컨셉: ",
		Scene:      "장면: ",
		VideoBrief: "[영상 브리프]",
		Story:      "스토리: ",

		Slogan:        "[슬로건] ",
		Tagline:       "[태그라인] ",
		ElevatorPitch: "[엘리베이터 피치] ",
		SocialPosts:   "[소셜미디어 콘텐츠]",

		KPIFramework:    "[KPI 프레임워크]",
		Target:          "   목표: ",
		SuccessCriteria: "[성공 기준]",

		StakeholderAnalysis: "[이해관계자 분석]",
		ObjectionHandling:   "[반대 의견 대응]",
		Objection:           "• 반대: ",
		Response:            "  대응: ",

		ImageCaption: "이미지 %d",
		VideoLabel:   "[영상 %d]",
	}
}

// LabelsFor returns the label set for locale, falling back to English.
func LabelsFor(locale Locale) Labels {
	if locale == LocaleKorean {
		return KoreanLabels()
	}
	return EnglishLabels()
}

func (l Labels) imageBrief(n int) string {
	return fmt.Sprintf(l.ImageBrief, n)
}

func (l Labels) imageCaption(n int) string {
	return fmt.Sprintf(l.ImageCaption, n)
}

func (l Labels) videoLabel(n int) string {
	return fmt.Sprintf(l.VideoLabel, n)
}
