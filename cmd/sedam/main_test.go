package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	model.ConfigPath = "disable"
	os.Exit(m.Run())
}

const policyJSON = `{
  "id": 12,
  "title": "Youth Housing Support",
  "category": "housing",
  "target_audience": "youth",
  "created_at": "2024-06-01T10:00:00"
}`

const analysisJSON = `{
  "policy_planning": {
    "objective": "Lower rent burden for young adults",
    "key_strategies": ["Deposit loans", "Rent vouchers"]
  },
  "marketing_materials": {"slogan": "A first home within reach"}
}`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func pngFile(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := range 40 {
		img.Set(x, 10, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return writeFile(t, dir, "a.png", buf.Bytes())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEDAM_REPORT_FONT_PATH", "")
	t.Setenv("SEDAM_REPORT_LOCALE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	stdout, err := run(t, "render",
		"--policy", writeFile(t, dir, "policy.json", []byte(policyJSON)),
		"--analysis", writeFile(t, dir, "analysis.json", []byte(analysisJSON)),
		"--image", pngFile(t, dir),
		"--video", writeFile(t, dir, "v1.txt", []byte("Sunrise over a new apartment block")),
		"--out", out,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	pages, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 2)
}

func TestRender_CoverOnly(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cover.pdf")

	_, err := run(t, "render",
		"--policy", writeFile(t, dir, "policy.json", []byte(policyJSON)),
		"--image", pngFile(t, dir),
		"--out", out,
		"--locale", "ko",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	pages, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	policy := writeFile(t, dir, "policy.json", []byte(policyJSON))
	out := filepath.Join(dir, "x.pdf")

	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"render", "--policy", policy}},
		{"missing policy file", []string{"render", "--policy", filepath.Join(dir, "nope.json"), "--out", out}},
		{"bad locale", []string{"render", "--policy", policy, "--out", out, "--locale", "fr"}},
		{"missing font", []string{"render", "--policy", policy, "--out", out, "--font", filepath.Join(dir, "none.ttf")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "package.zip")

	_, err := run(t, "archive",
		"--policy", writeFile(t, dir, "policy.json", []byte(policyJSON)),
		"--analysis", writeFile(t, dir, "analysis.json", []byte(analysisJSON)),
		"--image", pngFile(t, dir),
		"--video", writeFile(t, dir, "v1.txt", []byte("first")),
		"--video", writeFile(t, dir, "v2.txt", []byte("second")),
		"--out", out,
	)
	require.NoError(t, err)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"report.pdf",
		"policy_info.json",
		"analysis_full.json",
		"images/image_1.png",
		"video_prompts/prompt_1.txt",
		"video_prompts/prompt_2.txt",
		"README.txt",
	}, names)
}
