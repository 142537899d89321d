package material

import (
	"bufio"
	"bytes"
	"io"
)

// Shader is the shader every generated material uses.
const Shader = "complex.shader"

// Param is one fixed default parameter.
type Param struct {
	Key   string
	Value string
}

// DefaultParams are written verbatim, in this order, into every descriptor.
var DefaultParams = []Param{
	{"shader", Shader},
	{"g_flAmbientOcclusionDirectDiffuse", "0.000"},
	{"g_flAmbientOcclusionDirectSpecular", "0.000"},
	{"g_flModelTintAmount", "1.000"},
	{"g_vColorTint", "[1.000000 1.000000 1.000000 0.000000]"},
	{"g_flFadeExponent", "1.000"},
	{"g_bFogEnabled", "1"},
	{"g_flRoughnessScaleFactor", "1.000"},
	{"g_nScaleTexCoordUByModelScaleAxis", "0"},
	{"g_nScaleTexCoordVByModelScaleAxis", "0"},
	{"g_vTexCoordOffset", "[0.000 0.000]"},
	{"g_vTexCoordScale", "[1.000 1.000]"},
	{"g_vTexCoordScrollSpeed", "[0.000 0.000]"},
}

const (
	headerLine      = "// THIS FILE IS AUTO-GENERATED\n"
	layerName       = "Layer0"
	metalnessKey    = "g_flMetalness"
	metalnessScalar = "0.000"
)

// Line is one key/value entry of a descriptor body.
type Line struct {
	Key   string
	Value string
	Flag  bool // written unquoted, as "KEY 1"
}

// Descriptor is the body of a .vmat material, after the shader line.
type Descriptor struct {
	Shader string
	Lines  []Line
}

// Synthesize lays out the descriptor for flags and a.
func Synthesize(flags Flags, a Assignment) *Descriptor {
	d := &Descriptor{Shader: Shader}

	for _, name := range flags.Names() {
		d.Lines = append(d.Lines, Line{Key: name, Value: "1", Flag: true})
	}
	if !flags.MetalnessTexture {
		d.Lines = append(d.Lines, Line{Key: metalnessKey, Value: metalnessScalar})
	}

	for _, p := range DefaultParams {
		d.Lines = append(d.Lines, Line{Key: p.Key, Value: p.Value})
	}

	for _, role := range Roles {
		if b, ok := a[role]; ok {
			d.Lines = append(d.Lines, Line{Key: string(role), Value: b.Path})
		}
	}

	return d
}

// Encode writes the descriptor to w.
func (d *Descriptor) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw}

	wr.writeString(headerLine)
	wr.writeString(layerName + "\n{\n")
	wr.writeString("\tshader ")
	wr.writeQuoted(d.Shader)
	wr.writeString("\n\n")

	for _, l := range d.Lines {
		wr.writeString("\t")
		wr.writeString(l.Key)
		wr.writeString(" ")
		if l.Flag {
			wr.writeString(l.Value)
		} else {
			wr.writeQuoted(l.Value)
		}
		wr.writeString("\n")
	}

	wr.writeString("}\n")
	if wr.err != nil {
		return wr.err
	}

	return bw.Flush()
}

// Format renders the descriptor to bytes.
func (d *Descriptor) Format() []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	_ = d.Encode(&buf)
	return buf.Bytes()
}

// writer keeps the first write error so callers can check once.
type writer struct {
	w   io.Writer
	err error
}

// writeString writes s unless an earlier write failed.
func (w *writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// writeQuoted writes s between double quotes.
func (w *writer) writeQuoted(s string) {
	w.writeString("\"")
	w.writeString(s)
	w.writeString("\"")
}
