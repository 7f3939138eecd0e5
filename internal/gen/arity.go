package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// AdapterFilename is the output filename for the adapter variants.
const AdapterFilename = "adapter_gen.go"

// GeneratedFile is a rendered source file ready to be written.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// arityWords spells out arities for doc comments, indexed by arity.
var arityWords = []string{
	"", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

type adapterData struct {
	Package  string
	Variants []variantData
}

type variantData struct {
	Arity      int
	Article    string // "a" or "an", matching the spelled-out arity
	Word       string // e.g. "three"
	TypeParams string // e.g. "A1, A2, A3"
	CallArgs   string // e.g. "a1, a2, a3"
	Args       []argData
}

type argData struct {
	Var   string
	Param string
	Index int
}

// AdapterFile renders the WrapN builders for arities minArity through
// maxArity into a single gofmt-formatted source file.
func AdapterFile(pkg string, minArity, maxArity int) (GeneratedFile, error) {
	if minArity < 1 || maxArity > len(arityWords)-1 || minArity > maxArity {
		return GeneratedFile{}, fmt.Errorf("unsupported arity range [%d, %d]", minArity, maxArity)
	}

	data := adapterData{Package: pkg}
	for k := minArity; k <= maxArity; k++ {
		data.Variants = append(data.Variants, buildVariant(k))
	}

	var buf bytes.Buffer
	if err := adapterTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering adapter template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting generated adapters: %w", err)
	}

	return GeneratedFile{Filename: AdapterFilename, Content: formatted}, nil
}

func buildVariant(arity int) variantData {
	word := arityWords[arity]

	article := "a"
	if strings.HasPrefix(word, "e") {
		article = "an"
	}

	typeParams := make([]string, arity)
	callArgs := make([]string, arity)
	args := make([]argData, arity)

	for i := range args {
		typeParams[i] = fmt.Sprintf("A%d", i+1)
		callArgs[i] = fmt.Sprintf("a%d", i+1)
		args[i] = argData{Var: callArgs[i], Param: typeParams[i], Index: i}
	}

	return variantData{
		Arity:      arity,
		Article:    article,
		Word:       word,
		TypeParams: strings.Join(typeParams, ", "),
		CallArgs:   strings.Join(callArgs, ", "),
		Args:       args,
	}
}

var adapterTemplate = template.Must(template.New("adapters").Parse(`// Code generated by column-bridge gen. DO NOT EDIT.

package {{.Package}}
{{range .Variants}}
// Wrap{{.Arity}} erases the concrete column types of {{.Article}} {{.Word}}-input vector function.
func Wrap{{.Arity}}[{{.TypeParams}}, R Column](fn func({{.TypeParams}}) R) Adapter {
	return Adapter{
		arity: {{.Arity}},
		call: func(args []Column) (Column, error) {
{{- range .Args}}
			{{.Var}}, err := columnAt[{{.Param}}](args, {{.Index}})
			if err != nil {
				return nil, err
			}
{{- end}}
			return fn({{.CallArgs}}), nil
		},
	}
}
{{end}}`))
