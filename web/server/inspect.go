package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains rich information about an object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape
	Color     core.Color // Linear color the renderer produces for this pixel
}

// extractMaterialInfo classifies a material and lists its coefficients
func (s *Server) extractMaterialInfo(mat *material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":           hexColor(mat.Color, 1.0),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflectivity":    mat.Reflectivity,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
		"fresnel":         mat.Fresnel,
	}

	switch {
	case mat.Transparency > 0:
		return "glass", properties
	case mat.Reflectivity > 0:
		return "mirror", properties
	case mat.Specular > 0 && mat.Shininess > 0:
		return "phong", properties
	default:
		return "matte", properties
	}
}

// inspectPixel casts the primary ray through a pixel and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, shader *integrator.WhittedShader, width, height, pixelX, pixelY int) (InspectResult, error) {
	camera, err := geometry.NewCamera(sceneObj.CameraConfig())
	if err != nil {
		return InspectResult{}, err
	}

	ray := camera.GetRay(pixelX, pixelY, width, height)
	color := shader.RayColor(sceneObj, ray, 0)

	hit, isHit := integrator.FindNearest(sceneObj, ray, 0, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false, Color: color}, nil
	}

	return InspectResult{
		Hit:       true,
		HitRecord: hit,
		Shape:     sceneObj.Shapes()[hit.ShapeIndex],
		Color:     color,
	}, nil
}

// hexColor formats a linear color as #rrggbb after gamma and clamping
func hexColor(c core.Color, gamma float64) string {
	rgba := c.ToRGBA(gamma)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(inspectReq.Scene)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	shader, err := integrator.NewWhittedShader(inspectReq.renderConfig().Shading)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := inspectPixel(sceneObj, shader, inspectReq.Width, inspectReq.Height, pixelX, pixelY)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !result.Hit {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InspectResponse{Hit: false, Color: hexColor(result.Color, inspectReq.Gamma)})
		return
	}

	materialType, materialProps := s.extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := result.Shape.Describe()

	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		ShapeIndex:   result.HitRecord.ShapeIndex,
		Point:        [3]float64{result.HitRecord.Point.X, result.HitRecord.Point.Y, result.HitRecord.Point.Z},
		Normal:       [3]float64{result.HitRecord.Normal.X, result.HitRecord.Normal.Y, result.HitRecord.Normal.Z},
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Color:        hexColor(result.Color, inspectReq.Gamma),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
