package gpu

import "github.com/go-gl/gl/v4.1-core/gl"

// TextureFormat selects the GL internal format/format/type triple for a
// 2D texture page.
type TextureFormat int

const (
	TextureFormatR8    TextureFormat = iota // single-channel glyph coverage (grayscale atlas)
	TextureFormatRGBA8                      // straight RGBA (color-emoji atlas)
)

func (f TextureFormat) glEnums() (internalFormat int32, format, pixelType uint32) {
	if f == TextureFormatRGBA8 {
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
	return gl.R8, gl.RED, gl.UNSIGNED_BYTE
}

// Texture is one GPU-resident 2D texture page. Point-sampled and
// clamped at the edges: the atlas padding absorbs any bleed a bilinear
// filter would otherwise pull in from a neighboring glyph.
type Texture struct {
	ID     uint32
	Format TextureFormat
	Width  int32
	Height int32
}

// NewTexture allocates an empty width x height page, ready for Upload
// calls into its sub-rects as the atlas packer places glyphs into it.
func NewTexture(format TextureFormat, width, height int32) *Texture {
	var id uint32
	gl.GenTextures(1, &id)

	internalFormat, glFormat, pixelType := format.glEnums()

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, glFormat, pixelType, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Format: format, Width: width, Height: height}
}

// Upload writes pixels into the sub-rect (x,y,w,h) of the page, e.g.
// one freshly-packed glyph bitmap.
func (t *Texture) Upload(x, y, w, h int32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	_, glFormat, pixelType := t.Format.glEnums()

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, w, h, glFormat, pixelType, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// BindUnit binds this texture to the given texture unit, matching the
// cell_text fragment shader's explicit sampler binding layout (0 =
// grayscale atlas, 1 = color atlas).
func (t *Texture) BindUnit(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
