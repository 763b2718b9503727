package gpu

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a linked GL program built from a vertex and fragment
// source pair, after #include directive preprocessing.
type Shader struct {
	ID uint32
}

var includeDirective = regexp.MustCompile(`(?m)^\s*#include\s+"([^"]+)"\s*$`)

// PreprocessIncludes replaces every `#include "name"` line with the
// contents of sources[name], non-recursively (one substitution pass is
// enough for this shader set: common.glsl never itself includes
// anything).
func PreprocessIncludes(src string, sources map[string]string) (string, error) {
	var outerErr error
	out := includeDirective.ReplaceAllStringFunc(src, func(match string) string {
		sub := includeDirective.FindStringSubmatch(match)
		name := sub[1]
		included, ok := sources[name]
		if !ok {
			outerErr = fmt.Errorf("shader include not found: %q", name)
			return match
		}
		return included
	})
	if outerErr != nil {
		return "", outerErr
	}
	return out, nil
}

// NewShader compiles and links a vertex+fragment program from already
// include-preprocessed GLSL ES 3.10 source.
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

func (s *Shader) Use() { gl.UseProgram(s.ID) }

func (s *Shader) Delete() { gl.DeleteProgram(s.ID) }

func (s *Shader) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
