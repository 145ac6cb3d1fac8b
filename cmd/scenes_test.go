package cmd

import (
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestFormatSceneTable(t *testing.T) {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}

	table := formatSceneTable(scenes)
	for _, want := range []string{"cornell", "sphere-grid", "json:glass-and-mirror", "Glass and Mirror"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected scene table to contain %q:\n%s", want, table)
		}
	}
}
