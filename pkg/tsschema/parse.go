// Package tsschema parses the TypeScript-flavoured declarations embedded in
// route descriptors and converts them into OpenAPI schemas.
//
// A template holds optional import lines followed by exactly one
// `interface X { ... }` or `type X = ...` declaration. JSDoc comments on the
// declaration and its members carry descriptions and constraints:
//
//	interface BanData {
//	    /**
//	     * Ban reason
//	     * @minLength 1
//	     * @maxLength 1024
//	     */
//	    reason?: string
//	}
package tsschema

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

var templateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "DocComment", Pattern: `/\*\*([^*]|\*+[^*/])*\*+/`},
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	{Name: "String", Pattern: `"(\\"|[^"])*"|'(\\'|[^'])*'`},
	{Name: "Number", Pattern: `-?\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][\w$]*`},
	{Name: "Array", Pattern: `\[\]`},
	{Name: "Punct", Pattern: `[{}\[\]()<>;:,?|=.*]`},
})

var templateParser = participle.MustBuild[File](
	participle.Lexer(templateLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

// Definition is a converted declaration ready for registration as a
// component schema.
type Definition struct {
	Name    string
	Schema  *openapi.Schema
	Imports []string
}

// Parse parses a template into its syntax tree.
func Parse(src string) (*File, error) {
	file, err := templateParser.ParseString("", src)
	if err != nil {
		pe := &ParseError{Template: snippet(src), Err: err}
		var perr participle.Error
		if errors.As(err, &perr) {
			pe.Pos = perr.Position()
			pe.Err = errors.New(perr.Message())
		}
		return nil, pe
	}
	return file, nil
}

// Compile parses a template and converts its declaration into a schema.
func Compile(src string) (*Definition, error) {
	file, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Convert(file)
}

// Convert turns a parsed file into a named schema definition.
func Convert(file *File) (*Definition, error) {
	decl := file.Decl
	name := decl.Name()

	var c converter
	schema, err := c.declaration(decl)
	if err != nil {
		pe := &ParseError{Template: name, Err: err}
		var ce *convertError
		if errors.As(err, &ce) {
			pe.Pos = ce.pos
			pe.Err = ce.err
		}
		return nil, pe
	}

	def := &Definition{Name: name, Schema: schema}
	for _, imp := range file.Imports {
		def.Imports = append(def.Imports, imp.Names...)
	}
	return def, nil
}

func snippet(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "import") {
			continue
		}
		if len(line) > 48 {
			line = line[:48] + "..."
		}
		return strings.TrimSpace(strings.TrimSuffix(line, "{"))
	}
	return "<empty>"
}
