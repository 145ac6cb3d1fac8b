package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialName string                 `json:"materialName,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// materialInfo describes the material at a hit, evaluating textures at the hit's UV
func materialInfo(sc *scene.Scene, rec *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	mat := rec.Material

	for name, m := range sc.Materials {
		if m == mat {
			properties["name"] = name
			break
		}
	}

	switch mat.Kind {
	case material.KindLambertian, material.KindMetal:
		albedo := mat.Albedo.Evaluate(rec.UV, rec.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		if mat.Kind == material.KindMetal {
			properties["fuzz"] = mat.Fuzz
		}
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		properties["color"] = "#ffffff"
	case material.KindDiffuseLight:
		emission := mat.Emission.Evaluate(rec.UV, rec.Point)
		properties["emission"] = vecArray(emission)
		properties["color"] = hexColor(emission)
	}
	return mat.Kind.String(), properties
}

// geometryInfo describes a top-level shape of the scene
func geometryInfo(arena *geometry.Arena, h geometry.Handle) map[string]interface{} {
	properties := map[string]interface{}{
		"primitives": arena.PrimitiveCount(h),
	}

	if sphere, ok := arena.Sphere(h); ok {
		properties["center"] = vecArray(sphere.Center)
		properties["radius"] = sphere.Radius
	}
	if quad, ok := arena.Quad(h); ok {
		properties["corner"] = vecArray(quad.Corner)
		properties["u"] = vecArray(quad.U)
		properties["v"] = vecArray(quad.V)
		properties["normal"] = vecArray(quad.Normal)
	}
	return properties
}

// inspectPixel casts the unjittered ray through the center of pixel (x, y)
func inspectPixel(sc *scene.Scene, x, y int) InspectResponse {
	camera := renderer.NewCamera(sc.CameraConfig)
	ray := camera.GetCenterRay(x, y)

	var rec material.HitRecord
	if !sc.Arena.Hit(sc.Root, ray, core.ValidRange(), &rec) {
		return InspectResponse{Hit: false}
	}

	materialType, materialProps := materialInfo(sc, &rec)
	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(rec.Point),
		Normal:       vecArray(rec.Normal),
		Distance:     rec.T,
		FrontFace:    rec.FrontFace,
		Properties:   map[string]interface{}{"material": materialProps},
	}
	if name, ok := materialProps["name"].(string); ok {
		response.MaterialName = name
	}

	// The root only reports the nearest hit, so find which top-level shape produced it
	for _, shape := range sc.Shapes {
		var shapeRec material.HitRecord
		if sc.Arena.Hit(shape, ray, core.NewInterval(core.ValidRange().Min, rec.T+1e-9), &shapeRec) && shapeRec.T == rec.T {
			response.GeometryType = sc.Arena.Kind(shape).String()
			response.Properties["geometry"] = geometryInfo(sc.Arena, shape)
			break
		}
	}
	return response
}

func (s *Server) handleInspect(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = defaultScene
	}

	width, err := parseIntParam(c.QueryParams(), "width", 0)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	x, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, fmt.Errorf("invalid x coordinate: %q", c.QueryParam("x")))
	}
	y, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, fmt.Errorf("invalid y coordinate: %q", c.QueryParam("y")))
	}

	sc, err := scene.LookupID(name, renderer.CameraConfig{Width: width})
	if err != nil {
		return jsonError(c, lookupStatus(err), err)
	}
	if x < 0 || x >= sc.CameraConfig.Width || y < 0 || y >= sc.CameraConfig.Height() {
		return jsonError(c, http.StatusBadRequest, fmt.Errorf("pixel (%d, %d) is outside the %dx%d image",
			x, y, sc.CameraConfig.Width, sc.CameraConfig.Height()))
	}

	if err := sc.Validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if err := sc.Preprocess(); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, inspectPixel(sc, x, y))
}
