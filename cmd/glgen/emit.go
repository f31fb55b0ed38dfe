// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

type field struct {
	Symbol string
	Name   string
	Sig    string
}

type file struct {
	Args     string
	Package  string
	Doc      string
	Type     string
	ID       string
	IDPrefix string
	NamesVar string
	Recv     string
	Fields   []field
}

var fileTmpl = template.Must(template.New("file").Parse(`// SPDX-License-Identifier: Unlicense OR MIT

// Code generated by glgen {{.Args}}; DO NOT EDIT.

package {{.Package}}

import "unsafe"
{{if .ID}}
// {{.ID}} identifies an entry point of {{.Type}}.
type {{.ID}} int

const (
{{- range $i, $f := .Fields}}
	{{$.IDPrefix}}{{$f.Name}}{{if eq $i 0}} {{$.ID}} = iota{{end}}
{{- end}}
)
{{end}}
var {{.NamesVar}} = []string{
{{- range .Fields}}
	"{{.Symbol}}",
{{- end}}
}

{{.Doc}}
type {{.Type}} struct {
{{- range .Fields}}
	{{.Name}} {{.Sig}}
{{- end}}
}

func ({{.Recv}} *{{.Type}}) fields() []any {
	return []any{
{{- range .Fields}}
		&{{$.Recv}}.{{.Name}},
{{- end}}
	}
}
`))

var apiNames = map[string]string{
	"egl":    "EGL",
	"gles1":  "OpenGL ES",
	"gles2":  "OpenGL ES",
	"gl":     "OpenGL",
	"glsc2":  "OpenGL SC",
	"vulkan": "Vulkan",
	"opencl": "OpenCL",
}

// docText describes the struct generated for o.
func docText(o *options) string {
	name := apiNames[o.api]
	var s string
	switch {
	case o.level == "global":
		s = "holds the Vulkan entry points available before an instance exists. A nil field was not resolved."
	case o.level == "instance":
		s = "holds the instance level Vulkan entry points. A nil field was not resolved for the instance."
	case o.level == "device":
		s = "holds the device level Vulkan entry points. A nil field was not resolved for the device."
	case o.extensions:
		s = fmt.Sprintf("holds the %s extension entry points. A nil field is not supported by the driver.", name)
	case o.excludePrior:
		s = fmt.Sprintf("holds the entry points added by %s %s. A nil field was not resolved.", name, o.version)
	case o.version != "":
		s = fmt.Sprintf("holds the %s %s entry points. A nil field was not resolved.", name, strings.Replace(o.version, "-", " to ", 1))
	default:
		s = fmt.Sprintf("holds the %s entry points. A nil field was not resolved.", name)
	}
	return comment(o.typ+" "+s, 76)
}

// comment wraps text into // lines of at most width columns.
func comment(text string, width int) string {
	var lines []string
	line := "//"
	for _, w := range strings.Fields(text) {
		if len(line)+1+len(w) > width && line != "//" {
			lines = append(lines, line)
			line = "//"
		}
		line += " " + w
	}
	return strings.Join(append(lines, line), "\n")
}

// headerArgs returns the flags recorded in the generated header. The
// registry location and output file are left out to keep the output
// independent of the machine it is generated on.
func headerArgs(o *options) string {
	var args []string
	add := func(flag, v string) {
		if v != "" {
			args = append(args, "--"+flag, v)
		}
	}
	add("api", o.api)
	add("version", o.version)
	if o.excludePrior {
		args = append(args, "--exclude-prior")
	}
	if o.extensions {
		args = append(args, "--extensions")
	}
	add("level", o.level)
	if o.filterPath != "" {
		add("filter", filepath.Base(o.filterPath))
	}
	add("type", o.typ)
	add("id", o.id)
	add("prefix", o.prefix)
	return strings.Join(args, " ")
}

// generate renders the Go source for cmds.
func generate(o *options, cmds []*command) ([]byte, error) {
	base, err := baseTypes(o.api)
	if err != nil {
		return nil, err
	}
	f := file{
		Args:     headerArgs(o),
		Package:  o.pkg,
		Doc:      docText(o),
		Type:     o.typ,
		ID:       o.id,
		IDPrefix: strings.TrimSuffix(o.id, "ID"),
		NamesVar: strings.ToLower(o.typ[:1]) + o.typ[1:] + "Names",
		Recv:     strings.ToLower(o.typ[:1]),
	}
	for _, c := range cmds {
		sig, err := signature(c, base)
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(c.Symbol(), o.prefix)
		f.Fields = append(f.Fields, field{Symbol: c.Symbol(), Name: name, Sig: sig})
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, err
	}
	src, err := imports.Process(o.out, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
