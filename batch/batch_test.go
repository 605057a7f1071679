package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/pdxmerge/pdx-format/go-pdx/encode"
	"github.com/pdxmerge/pdx-format/go-pdx/merge"
)

func TestRunMergesAllFiles(t *testing.T) {
	files := []File{
		{
			Path: "common/traits/00_traits.txt",
			Base: []byte(`brave = { monthly_prestige = 0.5 }`),
			Overlays: []Source{
				{Mod: "balance", Text: []byte(`brave = { monthly_prestige = 1.0 }`)},
			},
		},
		{
			Path: "events/my_events.txt",
			Base: nil,
			Overlays: []Source{
				{Mod: "content", Text: []byte(`country_event = { id = content.1 }`)},
			},
		},
		{
			Path: "common/defines.txt",
			Base: []byte(`max_levies = 10`),
			Overlays: []Source{
				{Mod: "a", Text: []byte(`max_levies = 20`)},
				{Mod: "b", Text: []byte(`max_levies = 30`)},
			},
		},
	}
	results, err := Run(context.Background(), files, Concurrency(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i := range results {
		if results[i].Path != files[i].Path {
			t.Errorf("result %d: path %q, want %q (input order lost)",
				i, results[i].Path, files[i].Path)
		}
		if results[i].Err != nil {
			t.Errorf("%s: %v", results[i].Path, results[i].Err)
		}
	}
	if got := encode.MustWire(results[0].Merged); got != `brave = { monthly_prestige = 1.0 }` {
		t.Errorf("traits merged: %q", got)
	}
	if len(results[2].Conflicts) != 1 {
		t.Errorf("defines: got %d conflicts, want 1", len(results[2].Conflicts))
	}
	if results[2].Conflicts[0].Resolved != "30" {
		t.Errorf("defines resolved: %q", results[2].Conflicts[0].Resolved)
	}
}

func TestRunIsolatesParseFailures(t *testing.T) {
	files := []File{
		{
			Path:     "bad.txt",
			Overlays: []Source{{Mod: "m", Text: []byte(`a = {`)}},
		},
		{
			Path:     "good.txt",
			Overlays: []Source{{Mod: "m", Text: []byte(`a = 1`)}},
		},
	}
	results, err := Run(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Error("bad.txt should fail")
	}
	if results[1].Err != nil {
		t.Errorf("good.txt should succeed: %v", results[1].Err)
	}
	if results[1].Merged == nil {
		t.Error("good.txt has no merged tree")
	}
}

func TestRunForwardsMergeOptions(t *testing.T) {
	files := []File{
		{
			Path: "x.txt",
			Base: []byte(`x = 1`),
			Overlays: []Source{
				{Mod: "a", Text: []byte(`x = 2`)},
				{Mod: "b", Text: []byte(`x = 3`)},
			},
		},
	}
	results, err := Run(context.Background(), files,
		MergeOptions(merge.WithStrategy(merge.FirstWins{})))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustWire(results[0].Merged); got != `x = 2` {
		t.Errorf("got %q", got)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var files []File
	for i := 0; i < 64; i++ {
		files = append(files, File{
			Path:     fmt.Sprintf("f%d.txt", i),
			Overlays: []Source{{Mod: "m", Text: []byte(`a = 1`)}},
		})
	}
	if _, err := Run(ctx, files, Concurrency(1)); err == nil {
		t.Error("canceled context should surface an error")
	}
}
