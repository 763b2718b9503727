package res

import (
	"github.com/tapthaker/ghostty-android/glyphs"
)

// System font paths from the Android (AOSP) font stack. There are no
// font binaries in this repository to embed the way shaders.go embeds
// GLSL sources, and bundling multi-megabyte CJK/emoji fonts into the
// app binary isn't realistic for this kind of app anyway; loading by
// well-known system path is the Android-native equivalent of
// shaders.go's go:embed step for this build-time asset.
const (
	pathRobotoRegular    = "/system/fonts/Roboto-Regular.ttf"
	pathRobotoBold       = "/system/fonts/Roboto-Bold.ttf"
	pathRobotoItalic     = "/system/fonts/Roboto-Italic.ttf"
	pathRobotoBoldItalic = "/system/fonts/Roboto-BoldItalic.ttf"

	pathDroidSansMono = "/system/fonts/DroidSansMono.ttf"

	pathNotoCJKRegular = "/system/fonts/NotoSansCJK-Regular.ttc"
	pathNotoColorEmoji = "/system/fonts/NotoColorEmoji.ttf"
	pathDroidFallback  = "/system/fonts/DroidSansFallback.ttf"
)

// SystemFontLoader is the production glyphs.FontCollection source: a
// monospace primary family plus the eagerly-loaded fallback chain
// (Latin proportional, CJK, emoji, full-coverage backup), all loaded
// from the device's system font paths. Matches renderer.FontLoader.
func SystemFontLoader(sizePixels float32, dpi uint16) (*glyphs.FontCollection, error) {
	size := glyphs.FontSizeFromPixels(sizePixels, dpi)

	primary := glyphs.FamilySpec{
		Regular: glyphs.FaceSpec{Path: pathDroidSansMono, Source: glyphs.FontSourceSystemPath},
		Cover:   glyphs.CoverageLatin,
	}

	fallbacks := []glyphs.FamilySpec{
		{
			Regular:    glyphs.FaceSpec{Path: pathRobotoRegular, Source: glyphs.FontSourceSystemPath},
			Bold:       glyphs.FaceSpec{Path: pathRobotoBold, Source: glyphs.FontSourceSystemPath},
			Italic:     glyphs.FaceSpec{Path: pathRobotoItalic, Source: glyphs.FontSourceSystemPath},
			BoldItalic: glyphs.FaceSpec{Path: pathRobotoBoldItalic, Source: glyphs.FontSourceSystemPath},
			Cover:      glyphs.CoverageLatin,
		},
		{
			Regular: glyphs.FaceSpec{Path: pathNotoCJKRegular, Source: glyphs.FontSourceSystemPath},
			Cover:   glyphs.CoverageCJK,
		},
		{
			Regular: glyphs.FaceSpec{Path: pathNotoColorEmoji, Source: glyphs.FontSourceSystemPath},
			Cover:   glyphs.CoverageEmoji,
		},
		{
			Regular: glyphs.FaceSpec{Path: pathDroidFallback, Source: glyphs.FontSourceSystemPath},
			Cover:   glyphs.CoverageFullBackup,
		},
	}

	return glyphs.NewFontCollection(size, primary, fallbacks)
}
