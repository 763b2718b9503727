package renderer

import (
	"fmt"
	"log"

	"github.com/tapthaker/ghostty-android/assemble"
	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/gpu"
	"github.com/tapthaker/ghostty-android/res"
	"github.com/tapthaker/ghostty-android/screen"
)

// Grid size is clamped to this range on resize, regardless of computed
// screen_size / cell_size.
const (
	minGridCols, minGridRows = 24, 16
	maxGridCols, maxGridRows = 512, 512
)

// FontLoader builds a fresh font collection at a given pixel size; the
// concrete embedded/system font paths live with the platform layer,
// not here, so the orchestrator stays agnostic of asset plumbing.
type FontLoader func(sizePixels float32, dpi uint16) (*glyphs.FontCollection, error)

// Pipelines holds the three compiled shader programs the per-frame
// bg_color / cell_bg / cell_text draw sequence uses, in order.
type Pipelines struct {
	BgColor  *gpu.Shader
	CellBg   *gpu.Shader
	CellText *gpu.Shader
}

// Orchestrator is the top-level renderer state: screen/DPI/font-size,
// grid dimensions, the three shader pipelines, and the GPU buffers fed
// by the frame assembler each frame.
type Orchestrator struct {
	ScreenW, ScreenH float32
	DPI              uint16
	FontSizePx       float32

	GridCols, GridRows int
	CellW, CellH       float32
	Baseline           float32

	UnderlinePosition     float32
	UnderlineThickness    float32
	StrikethroughPosition float32

	Pipelines Pipelines

	UniformBuf  *gpu.Buffer
	AtlasDimBuf *gpu.Buffer
	BgSSBO      *gpu.Buffer
	GlyphVBO    *gpu.Buffer
	GlyphVAO    *gpu.VertexArray

	fonts      *assemble.DynamicFontSystem
	assembler  *assemble.FrameAssembler
	loadFonts  FontLoader
	rasterizer glyphs.Rasterizer
	initialized bool
}

func NewOrchestrator(loadFonts FontLoader, rasterizer glyphs.Rasterizer) *Orchestrator {
	return &Orchestrator{loadFonts: loadFonts, rasterizer: rasterizer}
}

// OnSurfaceCreated discards all renderer state; the next
// OnSurfaceChanged call re-initializes everything against the fresh GL
// context. Mirrors the "GL context lost" contract: never reuse a
// texture/buffer handle from a previous context.
func (o *Orchestrator) OnSurfaceCreated() {
	o.initialized = false
	o.Pipelines = Pipelines{}
	o.UniformBuf = nil
	o.AtlasDimBuf = nil
	o.BgSSBO = nil
	o.GlyphVBO = nil
	o.GlyphVAO = nil
}

// OnSurfaceChanged applies the first-call init path, or a resize
// and/or font-size change on subsequent calls.
func (o *Orchestrator) OnSurfaceChanged(widthPx, heightPx int, dpi uint16, fontSizePx float32) error {
	first := !o.initialized
	sizeChanged := fontSizePx != o.FontSizePx || dpi != o.DPI

	o.ScreenW, o.ScreenH = float32(widthPx), float32(heightPx)
	o.DPI = dpi

	if first {
		o.FontSizePx = fontSizePx
		if err := o.initGPU(); err != nil {
			return fmt.Errorf("renderer init: %w", err)
		}
		if err := o.rebuildFontSystem(); err != nil {
			return fmt.Errorf("renderer init: %w", err)
		}
		o.initialized = true
	} else if sizeChanged {
		o.FontSizePx = fontSizePx
		if err := o.rebuildFontSystem(); err != nil {
			log.Printf("renderer: font-size change failed, keeping previous font system: %v", err)
		}
	}

	o.recomputeGrid()
	return nil
}

func (o *Orchestrator) initGPU() error {
	o.UniformBuf = gpu.NewBuffer(gpu.KindUniform)
	o.AtlasDimBuf = gpu.NewBuffer(gpu.KindUniform)
	o.BgSSBO = gpu.NewBuffer(gpu.KindStorage)
	o.GlyphVBO = gpu.NewBuffer(gpu.KindVertex)
	o.GlyphVAO = gpu.NewVertexArray()

	o.GlyphVAO.ConfigureInstanced(o.GlyphVBO, 0, []gpu.Attr{
		{Type: gpu.AttrU32, Count: 2, Integer: true}, // glyph_pos
		{Type: gpu.AttrU32, Count: 2, Integer: true}, // glyph_size
		{Type: gpu.AttrI16, Count: 2, Integer: true}, // bearings
		{Type: gpu.AttrU16, Count: 2, Integer: true}, // grid_pos
		{Type: gpu.AttrU8, Count: 4, Normalized: true}, // color
		{Type: gpu.AttrU8, Count: 1, Integer: true},    // atlas
		{Type: gpu.AttrU8, Count: 1, Integer: true},    // flags
		{Type: gpu.AttrU16, Count: 1, Integer: true},   // attributes
	})

	bgColor, cellBg, cellText, err := res.BuildPipelines()
	if err != nil {
		return fmt.Errorf("compiling shader pipelines: %w", err)
	}
	o.Pipelines = Pipelines{BgColor: bgColor, CellBg: cellBg, CellText: cellText}

	return nil
}

// rebuildFontSystem tears down the font system completely (collection,
// resolver, cache, atlas set, glyph-location map) and rebuilds at the
// current size, per the font-size-change contract.
func (o *Orchestrator) rebuildFontSystem() error {
	col, err := o.loadFonts(o.FontSizePx, o.DPI)
	if err != nil {
		return err
	}

	const glyphCacheBudgetBytes = 8 << 20
	sizePx := uint16(o.FontSizePx + 0.5)

	if o.fonts == nil {
		o.fonts = assemble.NewDynamicFontSystem(col, o.rasterizer, glyphCacheBudgetBytes, sizePx)
	} else {
		o.fonts.Rebuild(col, o.rasterizer, glyphCacheBudgetBytes, sizePx)
	}

	o.recomputeCellMetrics(col)
	return nil
}

// Fallback cell-size ratios, used only when the primary face can't be
// measured directly (e.g. a test double with no backing font.Face), so
// the grid still has sane non-zero dimensions.
const (
	cellWidthFallbackRatio  = 0.6
	cellHeightFallbackRatio = 1.2
)

func (o *Orchestrator) recomputeCellMetrics(col *glyphs.FontCollection) {
	face := col.GetPrimaryFace(glyphs.FontStyleRegular)
	if face == nil || !face.Valid() || face.Face == nil {
		o.CellW = o.FontSizePx * cellWidthFallbackRatio
		o.CellH = o.FontSizePx * cellHeightFallbackRatio
		o.Baseline = o.FontSizePx
		return
	}

	m := glyphs.MeasureMetrics(face)
	o.CellW = m.CellWidth()
	o.CellH = m.CellHeight()
	o.Baseline = m.Baseline()

	o.UnderlineThickness = maxF32(1, o.FontSizePx*0.05)
	o.UnderlinePosition = o.Baseline + o.UnderlineThickness
	o.StrikethroughPosition = o.Baseline - m.Ascent*0.35
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// recomputeGrid derives grid dimensions from screen_size / cell_size,
// clamped to the supported range, per the resize contract.
func (o *Orchestrator) recomputeGrid() {
	if o.CellW == 0 || o.CellH == 0 {
		return
	}

	cols := int(o.ScreenW / o.CellW)
	rows := int(o.ScreenH / o.CellH)

	o.GridCols = clampInt(cols, minGridCols, maxGridCols)
	o.GridRows = clampInt(rows, minGridRows, maxGridRows)

	if o.fonts != nil {
		o.assembler = assemble.NewFrameAssembler(o.fonts, o.GridCols, o.GridRows)
	}
}

// buildUniforms packs the current frame's global uniform block. Cursor
// and color-management fields are left at their zero values: cursor
// rendering and P3/linear color paths aren't driven by any shader pass
// yet, and a zero PaddingRect/MinContrast mean "no padding, no
// contrast floor" respectively.
func (o *Orchestrator) buildUniforms() Uniforms {
	return Uniforms{
		Projection:         OrthoProjection(o.ScreenW, o.ScreenH),
		ScreenSize:         [2]float32{o.ScreenW, o.ScreenH},
		CellSize:           [2]float32{o.CellW, o.CellH},
		GridCols:           uint32(o.GridCols),
		GridRows:           uint32(o.GridRows),
		GlobalBgColor:      screen.DefaultBg.Pack(),
		UnderlinePosition:  o.UnderlinePosition,
		UnderlineThickness: o.UnderlineThickness,
		StrikethroughPos:   o.StrikethroughPosition,
		Baseline:           o.Baseline,
	}
}

func (o *Orchestrator) buildAtlasDimensions() AtlasDimensions {
	var dims AtlasDimensions
	if o.fonts != nil {
		dims.GrayscaleSize = [2]float32{float32(o.fonts.Grayscale.PageW), float32(o.fonts.Grayscale.PageH)}
		dims.ColorSize = [2]float32{float32(o.fonts.Color.PageW), float32(o.fonts.Color.PageH)}
	}
	return dims
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawFrame extracts the current terminal state and issues the
// three-pass draw: bg_color, then cell_bg (reads the SSBO), then
// cell_text (instanced, reads the VBO and atlas textures).
func (o *Orchestrator) DrawFrame(term screen.Terminal, palette *screen.Palette) error {
	if !o.initialized || o.assembler == nil {
		return nil
	}

	extractor := screen.NewExtractor(palette, o.fonts.Widths)
	cells := extractor.Extract(term)
	frame := o.assembler.Assemble(cells)
	o.fonts.SyncTextures()

	o.BgSSBO.Upload(packU32Slice(frame.BgColors))
	o.GlyphVBO.Upload(packInstances(frame.Glyphs))
	o.UniformBuf.Upload(packUniforms(o.buildUniforms()))
	o.AtlasDimBuf.Upload(packAtlasDimensions(o.buildAtlasDimensions()))

	// binding 0 is read by every pass's fragment/vertex shader via
	// common.glsl (screen/cell geometry, color-management flags), so
	// it's bound once for the whole frame rather than per-pass.
	o.UniformBuf.BindBase(0)

	gpu.ClearTransparentBlack()

	if o.Pipelines.BgColor != nil {
		o.Pipelines.BgColor.Use()
		gpu.DrawFullScreenTriangle()
		gpu.CheckError("bg_color pass")
	}

	if o.Pipelines.CellBg != nil {
		o.BgSSBO.BindBase(1)
		o.Pipelines.CellBg.Use()
		gpu.DrawFullScreenTriangle()
		gpu.CheckError("cell_bg pass")
	}

	if o.Pipelines.CellText != nil {
		o.AtlasDimBuf.BindBase(2)
		if tex := o.fonts.GrayscaleTexture(); tex != nil {
			tex.BindUnit(0)
		}
		if tex := o.fonts.ColorTexture(); tex != nil {
			tex.BindUnit(1)
		}
		o.Pipelines.CellText.Use()
		o.GlyphVAO.Bind()
		gpu.DrawInstancedQuads(len(frame.Glyphs))
		gpu.CheckError("cell_text pass")
	}

	return nil
}
