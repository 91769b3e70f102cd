// Package texture provides the tagged texture registry and GL texture upload.
package texture

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/logger"
)

// MaxSlots is the number of texture units the registry may occupy.
const MaxSlots = 16

// ErrSlotsExhausted is returned by Load once all texture units are taken.
var ErrSlotsExhausted = errors.New("texture: all texture slots in use")

// Device abstracts the GPU side of texture handling so the registry can be
// exercised headless.
type Device interface {
	// Upload transfers the image to the GPU and returns its handle.
	Upload(img *image.RGBA) (uint32, error)
	// Bind binds handle to the given texture unit.
	Bind(slot int, handle uint32)
}

// Entry associates a tag with an uploaded texture and its fixed slot.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// Registry is an ordered, append-only set of loaded textures. Slot
// assignment is insertion order; duplicate tags are permitted and the
// first registered entry wins on lookup.
type Registry struct {
	device  Device
	entries []Entry
	byTag   map[string]int // tag -> index of FIRST occurrence
}

// NewRegistry returns an empty registry backed by the given device.
func NewRegistry(device Device) (*Registry, error) {
	if device == nil {
		return nil, errors.New("texture: nil device")
	}
	return &Registry{
		device: device,
		byTag:  make(map[string]int),
	}, nil
}

// Load decodes the image file at path, uploads it and registers it under
// tag with the next free slot. Images must decode to 3 or 4 channels.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("loading %q: %w", path, ErrSlotsExhausted)
	}

	img, channels, err := DecodeFile(path)
	if err != nil {
		logger.Warn("texture load failed",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return fmt.Errorf("loading %q: %w", path, err)
	}

	handle, err := r.device.Upload(img)
	if err != nil {
		logger.Warn("texture upload failed",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return fmt.Errorf("uploading %q: %w", path, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})
	if _, exists := r.byTag[tag]; !exists {
		r.byTag[tag] = slot
	}

	logger.Info("texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("slot", slot),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int("channels", channels),
	)
	return nil
}

// BindAll binds every registered texture to its assigned slot in
// registration order. Slot assignment is shared GPU state, so this must
// run each frame before draws that sample textures. Calling it again is
// harmless: the registry is not mutated.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.device.Bind(e.Slot, e.Handle)
	}
}

// SlotOf returns the texture unit for the first texture registered under tag.
func (r *Registry) SlotOf(tag string) (int, bool) {
	idx, ok := r.byTag[tag]
	if !ok {
		return -1, false
	}
	return r.entries[idx].Slot, true
}

// HandleOf returns the GPU handle for the first texture registered under tag.
func (r *Registry) HandleOf(tag string) (uint32, bool) {
	idx, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}
	return r.entries[idx].Handle, true
}

// Count returns the number of registered textures.
func (r *Registry) Count() int { return len(r.entries) }
