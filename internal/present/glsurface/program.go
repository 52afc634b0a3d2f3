package glsurface

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// program is a linked GL program handle.
type program uint32

type stage struct {
	kind   uint32
	name   string
	source string
}

// newProgram compiles and links the given stages. Stage objects are freed
// once linked, whether or not linking succeeds.
func newProgram(stages ...stage) (program, error) {
	ids := make([]uint32, 0, len(stages))
	defer func() {
		for _, id := range ids {
			gl.DeleteShader(id)
		}
	}()

	for _, st := range stages {
		id, err := compileStage(st)
		if err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}

	p := gl.CreateProgram()
	for _, id := range ids {
		gl.AttachShader(p, id)
	}
	gl.LinkProgram(p)

	var ok int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(p, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(p)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program(p), nil
}

func compileStage(st stage) (uint32, error) {
	id := gl.CreateShader(st.kind)
	src, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile %s shader: %s", st.name, msg)
	}
	return id, nil
}

func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(id, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (p program) use() { gl.UseProgram(uint32(p)) }

func (p program) setInt(name string, v int32) {
	gl.Uniform1i(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")), v)
}

func (p *program) delete() {
	if *p != 0 {
		gl.DeleteProgram(uint32(*p))
		*p = 0
	}
}
