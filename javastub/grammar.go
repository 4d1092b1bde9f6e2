package javastub

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed stub file. Method bodies, fields and nested types are
// not part of the language.
type File struct {
	Pos     lexer.Position
	Package string    `parser:"'package' @( Ident ( '.' Ident )* ) ';'"`
	Imports []*Import `parser:"@@*"`
	Decls   []*Decl   `parser:"@@*"`
}

// Import is a single-type import such as "java.util.List" or an on-demand
// import such as "java.util.*".
type Import struct {
	Pos  lexer.Position
	Name string `parser:"'import' @( Ident ( '.' ( Ident | '*' ) )* ) ';'"`
}

type Decl struct {
	Pos         lexer.Position
	Annotations []*Annotation `parser:"@@*"`
	Modifiers   []string      `parser:"@( 'public' | 'protected' | 'private' | 'static' | 'abstract' | 'final' | 'sealed' )*"`
	Kind        string        `parser:"@( 'interface' | 'class' )"`
	Name        string        `parser:"@Ident"`
	TypeParams  []*TypeParam  `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Extends     []*TypeRef    `parser:"( 'extends' @@ ( ',' @@ )* )?"`
	Implements  []*TypeRef    `parser:"( 'implements' @@ ( ',' @@ )* )?"`
	Members     []*Member     `parser:"'{' @@* '}'"`
}

type Member struct {
	Pos         lexer.Position
	Annotations []*Annotation `parser:"@@*"`
	Modifiers   []string      `parser:"@( 'public' | 'protected' | 'private' | 'static' | 'abstract' | 'final' | 'native' | 'synchronized' | 'default' )*"`
	TypeParams  []*TypeParam  `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Result      *TypeRef      `parser:"@@"`
	Name        string        `parser:"@Ident"`
	Params      []*Param      `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Throws      []*TypeRef    `parser:"( 'throws' @@ ( ',' @@ )* )? ';'"`
}

type Param struct {
	Annotations []*Annotation `parser:"@@* 'final'?"`
	Type        *TypeRef      `parser:"@@"`
	Varargs     bool          `parser:"@Ellipsis?"`
	Name        string        `parser:"@Ident"`
}

type TypeParam struct {
	Name   string     `parser:"@Ident"`
	Bounds []*TypeRef `parser:"( 'extends' @@ ( '&' @@ )* )?"`
}

// TypeRef is a type as written. Name is a simple or qualified name and is
// resolved against the enclosing declarations and the file's imports.
type TypeRef struct {
	Pos  lexer.Position
	Name string     `parser:"@( Ident ( '.' Ident )* )"`
	Args []*TypeArg `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dims []string   `parser:"( @'[' ']' )*"`
}

type TypeArg struct {
	Wildcard bool     `parser:"( @'?'"`
	Bound    string   `parser:"  ( @( 'extends' | 'super' )"`
	Type     *TypeRef `parser:"    @@ )?"`
	Exact    *TypeRef `parser:"| @@ )"`
}

type Annotation struct {
	Name     string     `parser:"'@' @( Ident ( '.' Ident )* )"`
	Elements []*Element `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

// Element is an annotation element. Values are kept as written; a value
// without a name belongs to the element called "value".
type Element struct {
	Name  string `parser:"( @Ident '=' )?"`
	Value string `parser:"@( String | Number | Ident ( '.' Ident )* )"`
}

var stubLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?[LlFfDd]?`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[.;,<>(){}\[\]?@=&*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(stubLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
