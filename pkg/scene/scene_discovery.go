package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by Lookup for names that match no scene
var ErrUnknownScene = errors.New("unknown scene")

// builtinGroup is the group name of scenes compiled into the binary
const builtinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Lookup
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info  SceneInfo
	build func(...renderer.CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "cornell", Name: "Cornell Box", Description: "Cornell box with two rotated boxes and an area light"}, NewCornellScene},
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Metal, glass and diffuse spheres on a ground quad"}, NewDefaultScene},
	{SceneInfo{ID: "sphere", Name: "Simple Sphere", Description: "One diffuse sphere under the sky"}, NewSimpleSphereScene},
	{SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "Grid of rainbow-colored metallic spheres"}, NewSphereGridScene},
	{SceneInfo{ID: "texture", Name: "Texture Test", Description: "Procedural textures on spheres, quads and boxes"}, NewTextureTestScene},
}

// Lookup returns a freshly built scene. name is a built-in scene ID, a "json:<name>"
// ID from the scenes directory, or a path to a .json scene file.
func Lookup(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.build(cameraOverrides...), nil
		}
	}

	path := name
	if id, ok := strings.CutPrefix(name, "json:"); ok {
		if !isSceneFileName(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
		}
		dir := findScenesDir()
		if dir == "" {
			return nil, fmt.Errorf("%w: %q (no scenes directory)", ErrUnknownScene, name)
		}
		path = filepath.Join(dir, id+".json")
	} else if filepath.Ext(name) != ".json" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownScene, name, err)
	}
	if err != nil {
		return nil, err
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}
	return s, nil
}

// LookupID is Lookup restricted to scene IDs: built-in scenes and "json:<name>"
// files directly inside the scenes directory. File paths are rejected with
// ErrUnknownScene.
func LookupID(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if !isBuiltinID(id) && !strings.HasPrefix(id, "json:") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return Lookup(id, cameraOverrides...)
}

func isBuiltinID(id string) bool {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return true
		}
	}
	return false
}

// isSceneFileName reports whether name names a file in the scenes directory
// without leaving it
func isSceneFileName(name string) bool {
	return name != "" && name != "." &&
		!strings.ContainsAny(name, `/\`) &&
		!strings.Contains(name, "..")
}

// findScenesDir returns the first scenes directory found near the working directory
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListJSONScenes scans dir for .json scene files. A missing directory yields no scenes.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a JSON scene file without
// building it. Missing fields fall back to values derived from the file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       "json:" + base,
		Name:     titleCase(base),
		Group:    "JSON Scenes",
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("read scene metadata: %w", err)
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("decode scene metadata %s: %w", filePath, err)
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	if header.Group != "" {
		info.Group = header.Group
	}
	info.Description = header.Description
	return info, nil
}

// ListAllScenes returns both built-in and JSON scenes, grouped by category.
// Built-in scenes come first, other groups follow alphabetically.
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	all := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		all = append(all, info)
	}

	jsonScenes, err := ListJSONScenes(findScenesDir())
	if err != nil {
		return response, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	all = append(all, jsonScenes...)

	groupMap := make(map[string][]SceneInfo)
	var groupNames []string
	for _, info := range all {
		if _, seen := groupMap[info.Group]; !seen && info.Group != builtinGroup {
			groupNames = append(groupNames, info.Group)
		}
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: groupMap[builtinGroup]})
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
