package report_test

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/report"
)

func TestMain(m *testing.M) {
	model.ConfigPath = "disable"
	goleak.VerifyTestMain(m)
}

type op struct {
	Kind string
	X, Y float64
	W, H float64
	Size float64
	Text string
}

type recorder struct {
	pages [][]op
	size  float64
	err   error
}

func (r *recorder) NewPage()             { r.pages = append(r.pages, nil) }
func (r *recorder) SetFont(size float64) { r.size = size }
func (r *recorder) Err() error           { return r.err }

func (r *recorder) Text(x, y float64, s string) {
	r.add(op{Kind: "text", X: x, Y: y, Size: r.size, Text: s})
}

func (r *recorder) Image(_ []byte, x, y, w, h float64) {
	r.add(op{Kind: "image", X: x, Y: y, W: w, H: h})
}

func (r *recorder) add(o op) {
	last := len(r.pages) - 1
	r.pages[last] = append(r.pages[last], o)
}

func (r *recorder) texts() []string {
	var out []string
	for _, page := range r.pages {
		for _, o := range page {
			if o.Kind == "text" {
				out = append(out, o.Text)
			}
		}
	}
	return out
}

func (r *recorder) ops(kind string) []op {
	var out []op
	for _, page := range r.pages {
		for _, o := range page {
			if o.Kind == kind {
				out = append(out, o)
			}
		}
	}
	return out
}

func draw(t *testing.T, r *report.Renderer, doc report.Document) *recorder {
	t.Helper()
	rec := &recorder{}
	require.NoError(t, r.Draw(rec, doc))
	return rec
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func cleanAir() report.Subject {
	return report.Subject{
		Title:          "Clean Air Policy",
		Category:       "Environment",
		TargetAudience: "Citizens",
		CreatedAt:      "2024-01-01T00:00:00",
	}
}

func cleanAirAnalysis() *analysis.Analysis {
	return &analysis.Analysis{
		PolicyPlanning: &analysis.PolicyPlanning{
			Objective: analysis.Ptr("Reduce PM2.5 by 20%"),
		},
	}
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func strs(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}

func TestDraw_CoverOnly(t *testing.T) {
	top := report.DefaultLayout().Top()

	want := []op{
		{Kind: "text", X: 50, Y: top, Size: 24, Text: "Policy Report"},
		{Kind: "text", X: 50, Y: top - 50, Size: 14, Text: "Title: Clean Air Policy"},
		{Kind: "text", X: 50, Y: top - 75, Size: 11, Text: "Category: Environment"},
		{Kind: "text", X: 50, Y: top - 95, Size: 11, Text: "Audience: Citizens"},
		{Kind: "text", X: 50, Y: top - 115, Size: 11, Text: "Created: 2024-01-01T00:00:00"},
	}

	tests := []struct {
		name     string
		analysis *analysis.Analysis
	}{
		{"nil analysis", nil},
		{"empty analysis", &analysis.Analysis{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := draw(t, report.New(), report.Document{
				Subject:      cleanAir(),
				Analysis:     tt.analysis,
				Images:       [][]byte{pngImage(t, 4, 4)},
				VideoPrompts: []string{"ignored"},
			})

			require.Len(t, rec.pages, 1)
			if diff := cmp.Diff(want, rec.pages[0], approx); diff != "" {
				t.Errorf("cover mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDraw_PlanningOnly(t *testing.T) {
	top := report.DefaultLayout().Top()

	rec := draw(t, report.New(), report.Document{
		Subject:  cleanAir(),
		Analysis: cleanAirAnalysis(),
	})

	require.Len(t, rec.pages, 2)
	assert.Equal(t, "Title: Clean Air Policy", rec.pages[0][1].Text)

	want := []op{
		{Kind: "text", X: 50, Y: top, Size: 16, Text: "1. Policy Planning"},
		{Kind: "text", X: 60, Y: top - 31, Size: 10, Text: "[Objective] Reduce PM2.5 by 20%"},
	}
	if diff := cmp.Diff(want, rec.pages[1], approx); diff != "" {
		t.Errorf("page 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestDraw_AbsentSectionsKeepNumbering(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			StakeholderManagement: &analysis.StakeholderManagement{
				Stakeholders: []analysis.Stakeholder{
					{Group: analysis.Ptr("Drivers"), Interests: analysis.Ptr("Fuel costs")},
				},
			},
		},
	})

	require.Len(t, rec.pages, 2)
	assert.Equal(t, []string{
		"7. Stakeholder Management",
		"[Stakeholder Analysis]",
		"1. Drivers: Fuel costs",
	}, textsOf(rec.pages[1]))
}

func TestDraw_EmptyListsRenderHeadingOnly(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			PolicyPlanning: &analysis.PolicyPlanning{
				KeyStrategies:    []string{},
				ExpectedOutcomes: []string{},
			},
		},
	})

	assert.Equal(t, []string{"1. Policy Planning"}, textsOf(rec.pages[1]))
}

func TestDraw_ListCaps(t *testing.T) {
	a := &analysis.Analysis{
		PolicyPlanning: &analysis.PolicyPlanning{
			KeyStrategies:    strs("strategy", 20),
			ExpectedOutcomes: strs("outcome", 20),
		},
		CommunicationStrategy: &analysis.CommunicationStrategy{
			KeyMessages: strs("message", 20),
		},
		StakeholderManagement: &analysis.StakeholderManagement{
			ObjectionHandling: []analysis.Objection{
				{Objection: analysis.Ptr("a"), Response: analysis.Ptr("a")},
				{Objection: analysis.Ptr("b"), Response: analysis.Ptr("b")},
				{Objection: analysis.Ptr("c"), Response: analysis.Ptr("c")},
				{Objection: analysis.Ptr("d"), Response: analysis.Ptr("d")},
				{Objection: analysis.Ptr("e"), Response: analysis.Ptr("e")},
			},
		},
	}

	texts := draw(t, report.New(), report.Document{Subject: cleanAir(), Analysis: a}).texts()

	count := func(prefix string) int {
		n := 0
		for _, s := range texts {
			if strings.Contains(s, prefix) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 8, count("strategy"))
	assert.Equal(t, 5, count("outcome"))
	assert.Equal(t, 8, count("message"))
	assert.Equal(t, 4, count("Objection: "))
	assert.Contains(t, texts, "8. strategy 8")
	assert.NotContains(t, texts, "9. strategy 9")
}

func TestDraw_RecordListCaps(t *testing.T) {
	const n = 12

	tests := []struct {
		name   string
		cap    int
		marker string
		build  func(*analysis.Analysis, []string)
		want   func(i int, item string) string
	}{
		{
			name: "action items", cap: 8, marker: "act ",
			build: func(a *analysis.Analysis, items []string) {
				a.ExecutionPlan = &analysis.ExecutionPlan{}
				for _, it := range items {
					a.ExecutionPlan.ActionItems = append(a.ExecutionPlan.ActionItems, analysis.ActionItem{Action: analysis.Ptr(it)})
				}
			},
			want: func(i int, it string) string { return fmt.Sprintf("%d. %s", i+1, it) },
		},
		{
			name: "risks", cap: 5, marker: "risk ",
			build: func(a *analysis.Analysis, items []string) {
				a.ExecutionPlan = &analysis.ExecutionPlan{}
				for _, it := range items {
					a.ExecutionPlan.RiskManagement = append(a.ExecutionPlan.RiskManagement, analysis.Risk{Risk: analysis.Ptr(it)})
				}
			},
			want: func(_ int, it string) string { return "• " + it },
		},
		{
			name: "channels", cap: 5, marker: "chan ",
			build: func(a *analysis.Analysis, items []string) {
				a.CommunicationStrategy = &analysis.CommunicationStrategy{}
				for _, it := range items {
					a.CommunicationStrategy.Channels = append(a.CommunicationStrategy.Channels,
						analysis.Channel{Channel: analysis.Ptr(it), ContentType: analysis.Ptr("video")})
				}
			},
			want: func(_ int, it string) string { return "• " + it + ": video" },
		},
		{
			name: "social posts", cap: 5, marker: "plat ",
			build: func(a *analysis.Analysis, items []string) {
				a.MarketingMaterials = &analysis.MarketingMaterials{}
				for _, it := range items {
					a.MarketingMaterials.SocialMediaPosts = append(a.MarketingMaterials.SocialMediaPosts,
						analysis.SocialPost{Platform: analysis.Ptr(it), Content: analysis.Ptr("post")})
				}
			},
			want: func(i int, it string) string { return fmt.Sprintf("%d. %s: post", i+1, it) },
		},
		{
			name: "kpis", cap: 8, marker: "kpi ",
			build: func(a *analysis.Analysis, items []string) {
				a.PerformanceMetrics = &analysis.PerformanceMetrics{}
				for _, it := range items {
					a.PerformanceMetrics.KPIFramework = append(a.PerformanceMetrics.KPIFramework, analysis.KPI{Metric: analysis.Ptr(it)})
				}
			},
			want: func(i int, it string) string { return fmt.Sprintf("%d. %s", i+1, it) },
		},
		{
			name: "success criteria", cap: 5, marker: "crit ",
			build: func(a *analysis.Analysis, items []string) {
				a.PerformanceMetrics = &analysis.PerformanceMetrics{SuccessCriteria: items}
			},
			want: func(_ int, it string) string { return "• " + it },
		},
		{
			name: "stakeholders", cap: 6, marker: "group ",
			build: func(a *analysis.Analysis, items []string) {
				a.StakeholderManagement = &analysis.StakeholderManagement{}
				for _, it := range items {
					a.StakeholderManagement.Stakeholders = append(a.StakeholderManagement.Stakeholders,
						analysis.Stakeholder{Group: analysis.Ptr(it), Interests: analysis.Ptr("air")})
				}
			},
			want: func(i int, it string) string { return fmt.Sprintf("%d. %s: air", i+1, it) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := strs(strings.TrimSpace(tt.marker), n)
			a := &analysis.Analysis{}
			tt.build(a, items)

			var got []string
			for _, s := range draw(t, report.New(), report.Document{Subject: cleanAir(), Analysis: a}).texts() {
				if strings.Contains(s, tt.marker) {
					got = append(got, s)
				}
			}

			want := make([]string, tt.cap)
			for i := range want {
				want[i] = tt.want(i, items[i])
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDraw_CustomCaps(t *testing.T) {
	layout := report.DefaultLayout()
	layout.Caps.KeyStrategies = 2

	rec := draw(t, report.New(report.WithLayout(layout)), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			PolicyPlanning: &analysis.PolicyPlanning{KeyStrategies: strs("s", 5)},
		},
	})

	assert.Equal(t, []string{
		"1. Policy Planning",
		"[Key Strategies]",
		"1. s 1",
		"2. s 2",
	}, textsOf(rec.pages[1]))
}

func TestDraw_ExecutionPlan(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			ExecutionPlan: &analysis.ExecutionPlan{
				ActionItems: []analysis.ActionItem{
					{Phase: analysis.Ptr("1"), Action: analysis.Ptr("Install sensors")},
					{Phase: analysis.Ptr("2")},
				},
				ResourcesNeeded: &analysis.Resources{
					BudgetRange: analysis.Ptr("5B KRW"),
				},
				RiskManagement: []analysis.Risk{
					{Risk: analysis.Ptr("Low adoption"), Mitigation: analysis.Ptr("Incentives")},
					{Risk: analysis.Ptr("Cost overrun")},
				},
			},
		},
	})

	assert.Equal(t, []string{
		"2. Execution Plan",
		"[Action Items]",
		"1. Install sensors",
		"2. ",
		"[Resources]",
		"Budget: 5B KRW",
		"[Risk Management]",
		"• Low adoption",
		"  Mitigation: Incentives",
		"• Cost overrun",
	}, textsOf(rec.pages[1]))
}

func TestDraw_ContentBriefs(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			ContentBriefs: &analysis.ContentBriefs{
				ImageBrief2: &analysis.ImageBrief{
					Concept:          analysis.Ptr("Blue sky"),
					SceneDescription: analysis.Ptr("Children in a park"),
				},
				VideoBrief: &analysis.VideoBrief{NarrativeArc: analysis.Ptr("Smog to sky")},
			},
		},
	})

	assert.Equal(t, []string{
		"4. Content Briefs",
		"[Image Brief 2]",
		"Concept: Blue sky",
		"Scene: Children in a park",
		"[Video Brief]",
		"Story: Smog to sky",
	}, textsOf(rec.pages[1]))
}

func TestDraw_ParagraphChunking(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject: cleanAir(),
		Analysis: &analysis.Analysis{
			PolicyPlanning: &analysis.PolicyPlanning{
				Objective: analysis.Ptr(strings.Repeat("a", 1000)),
			},
		},
	})

	lines := textsOf(rec.pages[1])[1:]
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 85, len(l))
	}
	assert.True(t, strings.HasPrefix(lines[0], "[Objective] "))
}

func TestDraw_TruncatesByCharacter(t *testing.T) {
	title := norm.NFD.String(strings.Repeat("가", 80))
	labels := report.EnglishLabels()

	rec := draw(t, report.New(report.WithLabels(labels)), report.Document{
		Subject: report.Subject{Title: title},
	})

	assert.Equal(t, "Title: "+strings.Repeat("가", 50), rec.pages[0][1].Text)
}

func TestDraw_Images(t *testing.T) {
	top := report.DefaultLayout().Top()
	square := pngImage(t, 100, 100)

	t.Run("placement", func(t *testing.T) {
		rec := draw(t, report.New(), report.Document{
			Subject:  cleanAir(),
			Analysis: cleanAirAnalysis(),
			Images:   [][]byte{square},
		})

		// heading 31, objective 19, section gap 15, images heading 31
		y := top - 31 - 19 - 15 - 31
		want := []op{{Kind: "image", X: 175, Y: y - 200, W: 200, H: 200}}
		if diff := cmp.Diff(want, rec.ops("image"), approx); diff != "" {
			t.Errorf("image placement mismatch (-want +got):\n%s", diff)
		}
		assert.Contains(t, rec.texts(), "8. Generated Images")
		assert.Contains(t, rec.texts(), "Image 1")
	})

	t.Run("capped at four", func(t *testing.T) {
		images := [][]byte{square, square, square, square, square}
		rec := draw(t, report.New(), report.Document{
			Subject:  cleanAir(),
			Analysis: cleanAirAnalysis(),
			Images:   images,
		})

		assert.Len(t, rec.ops("image"), 4)
		assert.Contains(t, rec.texts(), "Image 4")
		assert.NotContains(t, rec.texts(), "Image 5")
	})

	t.Run("undecodable image skipped", func(t *testing.T) {
		rec := draw(t, report.New(), report.Document{
			Subject:  cleanAir(),
			Analysis: cleanAirAnalysis(),
			Images:   [][]byte{square, []byte("not an image"), square},
		})

		assert.Len(t, rec.ops("image"), 2)
		assert.Contains(t, rec.texts(), "Image 1")
		assert.NotContains(t, rec.texts(), "Image 2")
		assert.Contains(t, rec.texts(), "Image 3")
	})

	t.Run("oversized header skipped before decode", func(t *testing.T) {
		layout := report.DefaultLayout()
		layout.ImageMaxSourcePixels = 64 * 64

		rec := draw(t, report.New(report.WithLayout(layout)), report.Document{
			Subject:  cleanAir(),
			Analysis: cleanAirAnalysis(),
			Images:   [][]byte{pngImage(t, 65, 64), pngImage(t, 64, 64)},
		})

		assert.Len(t, rec.ops("image"), 1)
		assert.NotContains(t, rec.texts(), "Image 1")
		assert.Contains(t, rec.texts(), "Image 2")
	})

	t.Run("wide image centred vertically", func(t *testing.T) {
		rec := draw(t, report.New(), report.Document{
			Subject:  cleanAir(),
			Analysis: cleanAirAnalysis(),
			Images:   [][]byte{pngImage(t, 900, 100)},
		})

		imgs := rec.ops("image")
		require.Len(t, imgs, 1)
		assert.InDelta(t, 50, imgs[0].X, 1e-9)
		assert.InDelta(t, 450, imgs[0].W, 1e-9)
		assert.InDelta(t, 50, imgs[0].H, 1e-9)
	})
}

func TestDraw_VideoPrompts(t *testing.T) {
	rec := draw(t, report.New(), report.Document{
		Subject:      cleanAir(),
		Analysis:     cleanAirAnalysis(),
		VideoPrompts: strs("prompt", 12),
	})

	require.GreaterOrEqual(t, len(rec.pages), 3)
	assert.Equal(t, "9. Video Prompts", rec.pages[2][0].Text)

	texts := rec.texts()
	assert.Contains(t, texts, "[Video 9]")
	assert.NotContains(t, texts, "[Video 10]")
	assert.Contains(t, texts, "prompt 9")
	assert.NotContains(t, texts, "prompt 10")
}

func TestDraw_StaysWithinPage(t *testing.T) {
	layout := report.DefaultLayout()
	long := strings.Repeat("long text ", 60)

	rec := draw(t, report.New(), report.Document{
		Subject:      cleanAir(),
		Analysis:     fullAnalysis(long),
		Images:       [][]byte{pngImage(t, 64, 64), pngImage(t, 64, 64), pngImage(t, 64, 64)},
		VideoPrompts: []string{long, long, long},
	})

	assert.Greater(t, len(rec.pages), 4)
	for i, page := range rec.pages {
		for _, o := range page {
			assert.LessOrEqual(t, o.Y, layout.Top(), "page %d: %q", i+1, o.Text)
			assert.Greater(t, o.Y, 0.0, "page %d: %q", i+1, o.Text)
		}
	}
}

func TestDraw_CanvasError(t *testing.T) {
	rec := &recorder{err: errors.New("surface closed")}

	err := report.New().Draw(rec, report.Document{Subject: cleanAir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrRender)
}

func TestDraw_KoreanLabels(t *testing.T) {
	r := report.New(report.WithLabels(report.LabelsFor(report.LocaleKorean)))

	rec := draw(t, r, report.Document{Subject: cleanAir(), Analysis: cleanAirAnalysis()})

	assert.Equal(t, "정책 보고서", rec.pages[0][0].Text)
	assert.Equal(t, "1. 정책 기획", rec.pages[1][0].Text)
	assert.Equal(t, "[목표] Reduce PM2.5 by 20%", rec.pages[1][1].Text)
}

func TestRender(t *testing.T) {
	r := report.New()
	doc := report.Document{
		Subject:      cleanAir(),
		Analysis:     fullAnalysis("detail"),
		Images:       [][]byte{pngImage(t, 32, 16)},
		VideoPrompts: []string{"a documentary prompt"},
	}

	data, err := r.Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)

	rec := draw(t, r, doc)
	assert.Equal(t, len(rec.pages), pages)
}

func TestRender_CoverOnlyIsSinglePage(t *testing.T) {
	data, err := report.New().Render(report.Document{Subject: cleanAir()})
	require.NoError(t, err)

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestRender_Idempotent(t *testing.T) {
	r := report.New()
	doc := report.Document{
		Subject:  cleanAir(),
		Analysis: fullAnalysis("same"),
		Images:   [][]byte{pngImage(t, 20, 20)},
	}

	first, err := r.Render(doc)
	require.NoError(t, err)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			again, err := r.Render(doc)
			if err != nil {
				return err
			}
			if !bytes.Equal(first, again) {
				return errors.New("render output differs between calls")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRender_UnusableFontFallsBack(t *testing.T) {
	r := report.New(report.WithFont([]byte("definitely not a font")))

	data, err := r.Render(report.Document{Subject: cleanAir(), Analysis: cleanAirAnalysis()})
	require.NoError(t, err)

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*report.Layout)
		wantErr string
	}{
		{"default", func(*report.Layout) {}, ""},
		{"zero width", func(l *report.Layout) { l.PageWidth = 0 }, "page_width"},
		{"margin past page", func(l *report.Layout) { l.TopMargin = 900 }, "top_margin"},
		{"negative cap", func(l *report.Layout) { l.Caps.Risks = -1 }, "caps.risks"},
		{"jpeg quality", func(l *report.Layout) { l.ImageJPEGQuality = 0 }, "image_jpeg_quality"},
		{"zero line width", func(l *report.Layout) { l.BodyLineChars = 0 }, "body_line_chars"},
		{"zero source pixels", func(l *report.Layout) { l.ImageMaxSourcePixels = 0 }, "image_max_source_px"},
		{"zero cap", func(l *report.Layout) { l.Caps.Images = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := report.DefaultLayout()
			tt.mutate(&l)

			err := l.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCaps_Apply(t *testing.T) {
	zero, three := 0, 3

	var overrides report.CapOverrides
	overrides.Merge(report.CapOverrides{Images: &three, VideoPrompts: &three})
	overrides.Merge(report.CapOverrides{Images: &zero})

	caps := report.DefaultCaps()
	caps.Apply(overrides)

	assert.Equal(t, 0, caps.Images)
	assert.Equal(t, 3, caps.VideoPrompts)
	assert.Equal(t, 8, caps.KeyStrategies)
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "1. 정책 기획", report.LabelsFor(report.LocaleKorean).Planning)
	assert.Equal(t, "1. Policy Planning", report.LabelsFor(report.LocaleEnglish).Planning)
	assert.Equal(t, report.EnglishLabels(), report.LabelsFor("fr"))
}

func textsOf(page []op) []string {
	var out []string
	for _, o := range page {
		if o.Kind == "text" {
			out = append(out, o.Text)
		}
	}
	return out
}

func fullAnalysis(text string) *analysis.Analysis {
	p := analysis.Ptr(text)
	list := []string{text, text, text, text, text, text, text, text, text, text}

	return &analysis.Analysis{
		PolicyPlanning: &analysis.PolicyPlanning{
			Objective:        p,
			TargetAnalysis:   p,
			KeyStrategies:    list,
			ExpectedOutcomes: list,
		},
		ExecutionPlan: &analysis.ExecutionPlan{
			ActionItems:     []analysis.ActionItem{{Action: p}, {Action: p}},
			ResourcesNeeded: &analysis.Resources{BudgetRange: p, Personnel: p},
			RiskManagement:  []analysis.Risk{{Risk: p, Mitigation: p}},
		},
		CommunicationStrategy: &analysis.CommunicationStrategy{
			KeyMessages: list,
			Channels:    []analysis.Channel{{Channel: p, ContentType: p}},
		},
		ContentBriefs: &analysis.ContentBriefs{
			ImageBrief1: &analysis.ImageBrief{Concept: p, SceneDescription: p},
			ImageBrief2: &analysis.ImageBrief{Concept: p, SceneDescription: p},
			VideoBrief:  &analysis.VideoBrief{NarrativeArc: p},
		},
		MarketingMaterials: &analysis.MarketingMaterials{
			Slogan:           p,
			Tagline:          p,
			ElevatorPitch:    p,
			SocialMediaPosts: []analysis.SocialPost{{Platform: p, Content: p}},
		},
		PerformanceMetrics: &analysis.PerformanceMetrics{
			KPIFramework:    []analysis.KPI{{Metric: p, TargetRange: p}},
			SuccessCriteria: list,
		},
		StakeholderManagement: &analysis.StakeholderManagement{
			Stakeholders:      []analysis.Stakeholder{{Group: p, Interests: p}},
			ObjectionHandling: []analysis.Objection{{Objection: p, Response: p}},
		},
	}
}
