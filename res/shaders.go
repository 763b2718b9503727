// Package res embeds shader sources under shaders/, each pulled in at
// build time via go:embed so shader loading never touches the
// filesystem at runtime. It also holds SystemFontLoader (fonts.go),
// which does read font files from the device at runtime.
package res

import (
	"embed"

	"github.com/tapthaker/ghostty-android/gpu"
)

//go:embed shaders/*.glsl
var shaderFS embed.FS

func mustReadShader(name string) string {
	data, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		panic("res: missing embedded shader " + name + ": " + err.Error())
	}
	return string(data)
}

// includeSources is the #include substitution table available to
// every shader stage; common.glsl is the only shared include today.
func includeSources() map[string]string {
	return map[string]string{
		"common.glsl": mustReadShader("common.glsl"),
	}
}

// BuildShader preprocesses includes into vertName/fragName and links
// them into a gpu.Shader.
func BuildShader(vertName, fragName string) (*gpu.Shader, error) {
	vertSrc, err := gpu.PreprocessIncludes(mustReadShader(vertName), includeSources())
	if err != nil {
		return nil, err
	}
	fragSrc, err := gpu.PreprocessIncludes(mustReadShader(fragName), includeSources())
	if err != nil {
		return nil, err
	}
	return gpu.NewShader(vertSrc, fragSrc)
}

// BuildPipelines compiles the three shader programs the per-frame
// bg_color / cell_bg / cell_text pass sequence draws, in that order.
func BuildPipelines() (bgColor, cellBg, cellText *gpu.Shader, err error) {
	bgColor, err = BuildShader("full_screen.v.glsl", "bg_color.f.glsl")
	if err != nil {
		return nil, nil, nil, err
	}
	cellBg, err = BuildShader("full_screen.v.glsl", "cell_bg.f.glsl")
	if err != nil {
		return nil, nil, nil, err
	}
	cellText, err = BuildShader("cell_text.v.glsl", "cell_text.f.glsl")
	if err != nil {
		return nil, nil, nil, err
	}
	return bgColor, cellBg, cellText, nil
}
