package report

import (
	"fmt"

	"github.com/JaimeStill/sedam/internal/analysis"
)

// analysis draws the seven numbered sections. Absent sections are skipped
// without a heading; the ordinals in the remaining headings do not shift.
func (w *writer) analysis(a *analysis.Analysis) {
	if p := a.PolicyPlanning; p != nil {
		w.section(w.labels.Planning, func() { w.planning(p) })
	}
	if e := a.ExecutionPlan; e != nil {
		w.section(w.labels.Execution, func() { w.execution(e) })
	}
	if c := a.CommunicationStrategy; c != nil {
		w.section(w.labels.Communication, func() { w.communication(c) })
	}
	if b := a.ContentBriefs; b != nil {
		w.section(w.labels.Briefs, func() { w.briefs(b) })
	}
	if m := a.MarketingMaterials; m != nil {
		w.section(w.labels.Marketing, func() { w.marketing(m) })
	}
	if m := a.PerformanceMetrics; m != nil {
		w.section(w.labels.Metrics, func() { w.metrics(m) })
	}
	if s := a.StakeholderManagement; s != nil {
		w.section(w.labels.Stakeholders, func() { w.stakeholders(s) })
	}
}

func (w *writer) planning(p *analysis.PolicyPlanning) {
	caps := w.l.Caps

	if v, ok := analysis.Str(p.Objective); ok {
		w.body(w.labels.Objective + v)
	}
	if v, ok := analysis.Str(p.TargetAnalysis); ok {
		w.body(w.labels.TargetAnalysis + v)
	}

	if len(p.KeyStrategies) > 0 {
		w.label(w.labels.KeyStrategies)
		for i, s := range capped(p.KeyStrategies, caps.KeyStrategies) {
			w.item(numbered(i, s))
		}
	}

	if len(p.ExpectedOutcomes) > 0 {
		w.label(w.labels.ExpectedOutcomes)
		for _, o := range capped(p.ExpectedOutcomes, caps.ExpectedOutcomes) {
			w.item(bullet(o))
		}
	}
}

func (w *writer) execution(e *analysis.ExecutionPlan) {
	caps := w.l.Caps

	if len(e.ActionItems) > 0 {
		w.label(w.labels.ActionItems)
		for i, a := range capped(e.ActionItems, caps.ActionItems) {
			w.item(numbered(i, analysis.Text(a.Action)))
		}
	}

	if r := e.ResourcesNeeded; r != nil {
		w.label(w.labels.Resources)
		if v, ok := analysis.Str(r.BudgetRange); ok {
			w.item(w.labels.Budget + v)
		}
		if v, ok := analysis.Str(r.Personnel); ok {
			w.item(w.labels.Personnel + v)
		}
	}

	if len(e.RiskManagement) > 0 {
		w.label(w.labels.Risks)
		for _, r := range capped(e.RiskManagement, caps.Risks) {
			w.item(bullet(analysis.Text(r.Risk)))
			if v, ok := analysis.Str(r.Mitigation); ok {
				w.detail(w.labels.Mitigation + v)
			}
		}
	}
}

func (w *writer) communication(c *analysis.CommunicationStrategy) {
	caps := w.l.Caps

	if len(c.KeyMessages) > 0 {
		w.label(w.labels.KeyMessages)
		for i, m := range capped(c.KeyMessages, caps.KeyMessages) {
			w.item(numbered(i, m))
		}
	}

	if len(c.Channels) > 0 {
		w.label(w.labels.Channels)
		for _, ch := range capped(c.Channels, caps.Channels) {
			w.item(bullet(analysis.Text(ch.Channel) + ": " + analysis.Text(ch.ContentType)))
		}
	}
}

func (w *writer) briefs(b *analysis.ContentBriefs) {
	for i, key := range analysis.BriefKeys() {
		img := b.Image(key)
		if img == nil {
			continue
		}
		w.label(w.labels.imageBrief(i + 1))
		w.item(w.labels.Concept + analysis.Text(img.Concept))
		w.item(w.labels.Scene + analysis.Text(img.SceneDescription))
	}

	if v := b.VideoBrief; v != nil {
		w.label(w.labels.VideoBrief)
		w.item(w.labels.Story + analysis.Text(v.NarrativeArc))
	}
}

func (w *writer) marketing(m *analysis.MarketingMaterials) {
	if v, ok := analysis.Str(m.Slogan); ok {
		w.label(w.labels.Slogan + v)
	}
	if v, ok := analysis.Str(m.Tagline); ok {
		w.body(w.labels.Tagline + v)
	}
	if v, ok := analysis.Str(m.ElevatorPitch); ok {
		w.body(w.labels.ElevatorPitch + v)
	}

	if len(m.SocialMediaPosts) > 0 {
		w.label(w.labels.SocialPosts)
		for i, p := range capped(m.SocialMediaPosts, w.l.Caps.SocialPosts) {
			w.item(numbered(i, analysis.Text(p.Platform)+": "+analysis.Text(p.Content)))
		}
	}
}

func (w *writer) metrics(m *analysis.PerformanceMetrics) {
	caps := w.l.Caps

	if len(m.KPIFramework) > 0 {
		w.label(w.labels.KPIFramework)
		for i, k := range capped(m.KPIFramework, caps.KPIs) {
			w.item(numbered(i, analysis.Text(k.Metric)))
			if v, ok := analysis.Str(k.TargetRange); ok {
				w.detail(w.labels.Target + v)
			}
		}
	}

	if len(m.SuccessCriteria) > 0 {
		w.label(w.labels.SuccessCriteria)
		for _, c := range capped(m.SuccessCriteria, caps.SuccessCriteria) {
			w.item(bullet(c))
		}
	}
}

func (w *writer) stakeholders(s *analysis.StakeholderManagement) {
	caps := w.l.Caps

	if len(s.Stakeholders) > 0 {
		w.label(w.labels.StakeholderAnalysis)
		for i, g := range capped(s.Stakeholders, caps.Stakeholders) {
			w.item(numbered(i, analysis.Text(g.Group)+": "+analysis.Text(g.Interests)))
		}
	}

	if len(s.ObjectionHandling) > 0 {
		w.label(w.labels.ObjectionHandling)
		for _, o := range capped(s.ObjectionHandling, caps.Objections) {
			w.item(w.labels.Objection + analysis.Text(o.Objection))
			w.detail(w.labels.Response + analysis.Text(o.Response))
		}
	}
}

func numbered(i int, s string) string {
	return fmt.Sprintf("%d. %s", i+1, s)
}

func bullet(s string) string {
	return "• " + s
}
