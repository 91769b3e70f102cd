// Package material provides the named reflectance properties used by the scene.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/engine/shader"
	"github.com/mwhitten/stillscene/internal/logger"
)

// Material holds the reflectance properties pushed to the shader per draw.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Registry is an ordered, append-only set of materials. Duplicate tags are
// permitted; the first registered entry wins on lookup.
type Registry struct {
	materials []Material
	byTag     map[string]int // tag -> index of FIRST occurrence
	misses    int
}

// NewRegistry returns an empty material registry.
func NewRegistry() *Registry {
	return &Registry{
		byTag: make(map[string]int),
	}
}

// Define appends a material. Re-defining a tag keeps the original entry
// authoritative for lookups.
func (r *Registry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
	r.materials = append(r.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
	if _, exists := r.byTag[tag]; !exists {
		r.byTag[tag] = len(r.materials) - 1
	}
}

// Lookup returns the first material registered under tag.
func (r *Registry) Lookup(tag string) (Material, bool) {
	idx, ok := r.byTag[tag]
	if !ok {
		return Material{}, false
	}
	return r.materials[idx], true
}

// Count returns the number of registered materials, duplicates included.
func (r *Registry) Count() int { return len(r.materials) }

// Misses returns how many Apply calls failed to resolve a tag.
func (r *Registry) Misses() int { return r.misses }

// Apply resolves tag and pushes the material uniforms to the sink.
// A miss leaves the previous material in place and is counted.
func (r *Registry) Apply(sink shader.Sink, tag string) bool {
	m, ok := r.Lookup(tag)
	if !ok {
		r.misses++
		logger.Warn("material tag not found", zap.String("tag", tag))
		return false
	}
	sink.SetVec3("material.diffuseColor", m.Diffuse)
	sink.SetVec3("material.specularColor", m.Specular)
	sink.SetFloat("material.shininess", m.Shininess)
	return true
}
