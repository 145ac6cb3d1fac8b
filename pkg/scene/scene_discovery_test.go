package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLookup_Builtins(t *testing.T) {
	for _, b := range builtinScenes {
		t.Run(b.info.ID, func(t *testing.T) {
			s, err := Lookup(b.info.ID)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", b.info.ID, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene is invalid: %v", err)
			}
			if len(s.Shapes) == 0 {
				t.Error("Expected built-in scene to have shapes")
			}
		})
	}
}

func TestLookup_CameraOverride(t *testing.T) {
	s, err := Lookup("cornell", renderer.CameraConfig{Width: 32})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if s.CameraConfig.Width != 32 || s.CameraConfig.VFov != 45 {
		t.Errorf("Expected width override with default fov, got %+v", s.CameraConfig)
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"no-such-scene", "json:missing", filepath.Join(t.TempDir(), "missing.json")} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownScene) {
			t.Errorf("Lookup(%q): expected ErrUnknownScene, got %v", name, err)
		}
	}
}

func TestLookup_RejectsEscapingSceneNames(t *testing.T) {
	for _, name := range []string{"json:", "json:../secret", "json:../../etc/scene", `json:..\\secret`, "json:sub/scene"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownScene) {
			t.Errorf("Lookup(%q): expected ErrUnknownScene, got %v", name, err)
		}
	}
}

func TestLookupID(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "scenes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "scenes", "one-ball.json"), []byte(minimalSceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(t.TempDir(), "outside.json")
	if err := os.WriteFile(outside, []byte(minimalSceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"builtin", "cornell", true},
		{"scenes directory", "json:one-ball", true},
		{"absolute path", outside, false},
		{"relative path", "scenes/one-ball.json", false},
		{"parent directory", "json:../scenes/one-ball", false},
		{"unknown", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LookupID(tt.id, renderer.CameraConfig{Width: 16})
			if tt.found {
				if err != nil {
					t.Fatalf("LookupID(%q) failed: %v", tt.id, err)
				}
				if s.CameraConfig.Width != 16 {
					t.Errorf("Expected width override, got %d", s.CameraConfig.Width)
				}
				return
			}
			if !errors.Is(err, ErrUnknownScene) {
				t.Errorf("LookupID(%q): expected ErrUnknownScene, got %v", tt.id, err)
			}
		})
	}
}

func TestLookup_JSONPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one-ball.json")
	if err := os.WriteFile(path, []byte(minimalSceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Lookup(path)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if s.Name != "one-ball" {
		t.Errorf("Expected name from file, got %q", s.Name)
	}
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file     string
		content  string
		expected SceneInfo
	}{
		{
			file:    "complete.json",
			content: `{"name": "Glass Room", "description": "Two glass balls", "group": "Glass", "objects": []}`,
			expected: SceneInfo{
				ID: "json:complete", Name: "Glass Room", Description: "Two glass balls",
				Group: "Glass", Type: "json",
			},
		},
		{
			file:    "no_metadata.json",
			content: `{"objects": []}`,
			expected: SceneInfo{
				ID: "json:no_metadata", Name: "No Metadata", Group: "JSON Scenes", Type: "json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			tc.expected.FilePath = path

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata failed: %v", err)
			}
			if info != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, info)
			}
		})
	}
}

func TestListJSONScenes(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"b.json":   `{"name": "Beta"}`,
		"a.json":   `{"name": "Alpha"}`,
		"skip.txt": `not a scene`,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListJSONScenes(dir)
	if err != nil {
		t.Fatalf("ListJSONScenes failed: %v", err)
	}
	if len(scenes) != 2 || scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected Alpha, Beta; got %+v", scenes)
	}

	if empty, err := ListJSONScenes(""); err != nil || len(empty) != 0 {
		t.Errorf("Expected no scenes without a directory, got %v, %v", empty, err)
	}
}

func TestListAllScenes(t *testing.T) {
	response, err := ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}
	if len(response.Groups) == 0 || response.Groups[0].Name != builtinGroup {
		t.Fatalf("Expected built-in group first, got %+v", response.Groups)
	}
	if len(response.Groups[0].Scenes) != len(builtinScenes) {
		t.Errorf("Expected %d built-in scenes, got %d", len(builtinScenes), len(response.Groups[0].Scenes))
	}
	for _, info := range response.Groups[0].Scenes {
		if info.Type != "builtin" {
			t.Errorf("Expected builtin type for %s, got %q", info.ID, info.Type)
		}
	}
}
