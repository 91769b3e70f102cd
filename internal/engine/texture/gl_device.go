package texture

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice uploads and binds textures through OpenGL. It requires a
// current GL context.
type GLDevice struct{}

// Upload transfers the image to a new GL texture object with repeat
// wrapping, linear filtering and generated mipmaps.
func (GLDevice) Upload(img *image.RGBA) (uint32, error) {
	if img == nil || len(img.Pix) == 0 {
		return 0, errors.New("texture: empty image")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(img.Bounds().Dx()),
		int32(img.Bounds().Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&img.Pix[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle, nil
}

// Bind binds handle to the given texture unit.
func (GLDevice) Bind(slot int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}
