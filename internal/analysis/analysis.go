// Package analysis defines the structured policy plan produced by the analysis
// workflow. Every section and every scalar is optional: a nil pointer means the
// model omitted the key, and consumers render only what is present.
package analysis

import "encoding/json"

// Analysis is the seven-section policy plan.
type Analysis struct {
	PolicyPlanning        *PolicyPlanning        `json:"policy_planning,omitempty"`
	ExecutionPlan         *ExecutionPlan         `json:"execution_plan,omitempty"`
	CommunicationStrategy *CommunicationStrategy `json:"communication_strategy,omitempty"`
	ContentBriefs         *ContentBriefs         `json:"content_briefs,omitempty"`
	MarketingMaterials    *MarketingMaterials    `json:"marketing_materials,omitempty"`
	PerformanceMetrics    *PerformanceMetrics    `json:"performance_metrics,omitempty"`
	StakeholderManagement *StakeholderManagement `json:"stakeholder_management,omitempty"`
}

// SectionCount reports how many of the seven sections are present.
func (a *Analysis) SectionCount() int {
	if a == nil {
		return 0
	}

	n := 0
	for _, present := range []bool{
		a.PolicyPlanning != nil,
		a.ExecutionPlan != nil,
		a.CommunicationStrategy != nil,
		a.ContentBriefs != nil,
		a.MarketingMaterials != nil,
		a.PerformanceMetrics != nil,
		a.StakeholderManagement != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

// Empty reports whether the analysis is nil or carries no sections.
func (a *Analysis) Empty() bool {
	return a.SectionCount() == 0
}

// Decode parses a stored analysis document.
func Decode(data []byte) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// PolicyPlanning covers objectives, audience analysis, and strategy.
type PolicyPlanning struct {
	Objective        *string   `json:"objective,omitempty"`
	TargetAnalysis   *string   `json:"target_analysis,omitempty"`
	KeyStrategies    []string  `json:"key_strategies,omitempty"`
	ExpectedOutcomes []string  `json:"expected_outcomes,omitempty"`
	Timeline         *Timeline `json:"timeline,omitempty"`
}

type Timeline struct {
	Preparation *string `json:"preparation,omitempty"`
	Pilot       *string `json:"pilot,omitempty"`
	Expansion   *string `json:"expansion,omitempty"`
}

// ExecutionPlan covers phased actions, resources, and risks.
type ExecutionPlan struct {
	ActionItems     []ActionItem `json:"action_items,omitempty"`
	ResourcesNeeded *Resources   `json:"resources_needed,omitempty"`
	RiskManagement  []Risk       `json:"risk_management,omitempty"`
}

type ActionItem struct {
	Phase       *string `json:"phase,omitempty"`
	Action      *string `json:"action,omitempty"`
	Responsible *string `json:"responsible,omitempty"`
	Timeline    *string `json:"timeline,omitempty"`
}

type Resources struct {
	BudgetRange    *string `json:"budget_range,omitempty"`
	Personnel      *string `json:"personnel,omitempty"`
	Infrastructure *string `json:"infrastructure,omitempty"`
}

type Risk struct {
	Risk       *string `json:"risk,omitempty"`
	Impact     *string `json:"impact,omitempty"`
	Mitigation *string `json:"mitigation,omitempty"`
}

// CommunicationStrategy covers messaging and distribution channels.
type CommunicationStrategy struct {
	KeyMessages            []string        `json:"key_messages,omitempty"`
	Channels               []Channel       `json:"channels,omitempty"`
	TargetSpecificMessages *TargetMessages `json:"target_specific_messages,omitempty"`
}

type Channel struct {
	Channel     *string `json:"channel,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
}

type TargetMessages struct {
	Citizens *string `json:"citizens,omitempty"`
	Youth    *string `json:"youth,omitempty"`
	Elderly  *string `json:"elderly,omitempty"`
	Parents  *string `json:"parents,omitempty"`
}

// MarketingMaterials covers slogans, pitches, and ready-to-post copy.
type MarketingMaterials struct {
	Slogan           *string      `json:"slogan,omitempty"`
	Tagline          *string      `json:"tagline,omitempty"`
	ElevatorPitch    *string      `json:"elevator_pitch,omitempty"`
	PressRelease     *string      `json:"press_release,omitempty"`
	SocialMediaPosts []SocialPost `json:"social_media_posts,omitempty"`
	FAQ              []FAQ        `json:"faq,omitempty"`
}

type SocialPost struct {
	Platform *string  `json:"platform,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

type FAQ struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
}

// PerformanceMetrics covers KPIs and monitoring cadence.
type PerformanceMetrics struct {
	KPIFramework        []KPI           `json:"kpi_framework,omitempty"`
	SuccessCriteria     []string        `json:"success_criteria,omitempty"`
	MonitoringPlan      *MonitoringPlan `json:"monitoring_plan,omitempty"`
	ImprovementTriggers []string        `json:"improvement_triggers,omitempty"`
}

type KPI struct {
	Category          *string `json:"category,omitempty"`
	Metric            *string `json:"metric,omitempty"`
	MeasurementMethod *string `json:"measurement_method,omitempty"`
	TargetRange       *string `json:"target_range,omitempty"`
	DataSource        *string `json:"data_source,omitempty"`
}

type MonitoringPlan struct {
	Daily   *string `json:"daily,omitempty"`
	Weekly  *string `json:"weekly,omitempty"`
	Monthly *string `json:"monthly,omitempty"`
}

// StakeholderManagement covers interest groups and anticipated objections.
type StakeholderManagement struct {
	Stakeholders      []Stakeholder `json:"stakeholders,omitempty"`
	ObjectionHandling []Objection   `json:"objection_handling,omitempty"`
}

type Stakeholder struct {
	Group              *string `json:"group,omitempty"`
	Interests          *string `json:"interests,omitempty"`
	EngagementStrategy *string `json:"engagement_strategy,omitempty"`
}

type Objection struct {
	Objection *string `json:"objection,omitempty"`
	Response  *string `json:"response,omitempty"`
}

// Str returns the value of an optional scalar and whether it carries content.
// Empty strings count as absent.
func Str(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

// Text returns the value of an optional scalar or the empty string.
func Text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
