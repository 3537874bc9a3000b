package tsschema

import "github.com/alecthomas/participle/v2/lexer"

// File is one schema template: leading imports followed by a single declaration.
type File struct {
	Pos     lexer.Position
	Imports []*Import    `parser:"@@*"`
	Decl    *Declaration `parser:"@@ ';'?"`
}

// Import records the names brought in by an import line. Imports carry no
// schema content; referenced names resolve against the component registry.
type Import struct {
	Pos   lexer.Position
	Names []string `parser:"'import' 'type'? ( '{' @Ident ( ',' @Ident )* ','? '}' | '*' 'as' @Ident | @Ident )"`
	From  string   `parser:"'from' @String ';'?"`
}

type Declaration struct {
	Pos       lexer.Position
	Doc       *string    `parser:"@DocComment?"`
	Export    bool       `parser:"@'export'?"`
	Interface *Interface `parser:"( @@"`
	Alias     *Alias     `parser:"| @@ )"`
}

// Name returns the declared type name.
func (d *Declaration) Name() string {
	if d.Interface != nil {
		return d.Interface.Name
	}
	return d.Alias.Name
}

type Interface struct {
	Name    string    `parser:"'interface' @Ident"`
	Extends []string  `parser:"( 'extends' @Ident ( ',' @Ident )* )?"`
	Members []*Member `parser:"'{' @@* '}'"`
}

type Alias struct {
	Name string `parser:"'type' @Ident '='"`
	Type *Type  `parser:"@@"`
}

type Member struct {
	Pos      lexer.Position
	Doc      *string `parser:"@DocComment?"`
	Name     string  `parser:"( @Ident | @String )"`
	Optional bool    `parser:"@'?'? ':'"`
	Type     *Type   `parser:"@@ ( ';' | ',' )?"`
}

// Type is a union of one or more postfix types; a leading bar is allowed.
type Type struct {
	Pos   lexer.Position
	Union []*Postfix `parser:"'|'? @@ ( '|' @@ )*"`
}

type Postfix struct {
	Primary *Primary `parser:"@@"`
	Dims    []string `parser:"@Array*"`
}

type Primary struct {
	Pos    lexer.Position
	String *string  `parser:"  @String"`
	Number *float64 `parser:"| @Number"`
	Object *Object  `parser:"| @@"`
	Tuple  *Tuple   `parser:"| @@"`
	Group  *Type    `parser:"| '(' @@ ')'"`
	Ref    *Ref     `parser:"| @@"`
}

type Object struct {
	Members []*Member `parser:"'{' @@* '}'"`
}

type Tuple struct {
	Elems []*Type `parser:"'[' ( @@ ( ',' @@ )* ','? )? ']'"`
}

// Ref is a named type, optionally qualified and with generic arguments.
type Ref struct {
	Name []string `parser:"@Ident ( '.' @Ident )*"`
	Args []*Type  `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
}
