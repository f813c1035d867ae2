package archive_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/sedam/internal/archive"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = body
	}
	return files
}

func entryOrder(t *testing.T, data []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}

func TestBuild(t *testing.T) {
	b := archive.Bundle{
		Title:     "청정 대기 정책",
		CreatedAt: "2024-01-01T00:00:00",
		Policy: map[string]any{
			"title":    "청정 대기 정책",
			"category": "환경 & 기후",
		},
		Analysis:     map[string]any{"policy_planning": map[string]any{"objective": "PM2.5 감축"}},
		Report:       []byte("%PDF-1.3 fake"),
		Images:       [][]byte{[]byte("png-1"), []byte("png-2")},
		VideoPrompts: []string{"documentary", "cinematic"},
	}

	data, err := archive.Build(b)
	require.NoError(t, err)

	want := []string{
		"report.pdf",
		"policy_info.json",
		"analysis_full.json",
		"images/image_1.png",
		"images/image_2.png",
		"video_prompts/prompt_1.txt",
		"video_prompts/prompt_2.txt",
		"README.txt",
	}
	assert.Equal(t, want, entryOrder(t, data))
	assert.Equal(t, want, b.Names())

	files := readArchive(t, data)
	assert.Equal(t, b.Report, files["report.pdf"])
	assert.Equal(t, []byte("png-2"), files["images/image_2.png"])
	assert.Equal(t, "cinematic", string(files["video_prompts/prompt_2.txt"]))

	policy := string(files["policy_info.json"])
	assert.Contains(t, policy, "청정 대기 정책")
	assert.Contains(t, policy, "환경 & 기후")
	assert.Contains(t, policy, "\n  \"")

	var analysis map[string]any
	require.NoError(t, json.Unmarshal(files["analysis_full.json"], &analysis))
	assert.Contains(t, analysis, "policy_planning")

	readme := string(files["README.txt"])
	assert.Contains(t, readme, "Policy title: 청정 대기 정책")
	assert.Contains(t, readme, "Created: 2024-01-01T00:00:00")
	assert.Contains(t, readme, "- report.pdf")
	assert.Contains(t, readme, "Sora, Runway, Pika")
}

func TestBuild_Minimal(t *testing.T) {
	b := archive.Bundle{
		Title:  "Clean Air",
		Policy: map[string]any{"title": "Clean Air"},
	}

	data, err := archive.Build(b)
	require.NoError(t, err)

	assert.Equal(t, []string{"policy_info.json", "analysis_full.json", "README.txt"}, entryOrder(t, data))

	files := readArchive(t, data)
	assert.Equal(t, "{}", string(files["analysis_full.json"]))

	readme := string(files["README.txt"])
	assert.NotContains(t, readme, "- report.pdf")
	assert.NotContains(t, readme, "- images/")
}

func TestBuild_Reproducible(t *testing.T) {
	b := archive.Bundle{
		Title:        "Clean Air",
		Policy:       map[string]any{"title": "Clean Air", "id": 1},
		Images:       [][]byte{bytes.Repeat([]byte{1, 2, 3}, 1000)},
		VideoPrompts: []string{"prompt"},
	}

	first, err := archive.Build(b)
	require.NoError(t, err)
	second, err := archive.Build(b)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestBuild_UnencodablePolicy(t *testing.T) {
	_, err := archive.Build(archive.Bundle{Policy: make(chan int)})
	require.Error(t, err)
	assert.ErrorIs(t, err, archive.ErrBuild)
}
