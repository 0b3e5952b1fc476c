// Copyright 2023-2026 The Reed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import "fmt"

// Kind identifies what kind of token or node a tree element is.
//
// The zero value is [Tombstone], a placeholder kind used by event-buffering
// grammar drivers for nodes that are abandoned before they are materialized.
// No finished tree contains a Tombstone.
type Kind uint8

const (
	Tombstone Kind = iota

	// Error tags both unrecognized input at the token level and error
	// recovery nodes at the grammar level. It keeps the tree total over
	// arbitrary byte input: an unrecognized character becomes an ordinary
	// token of kind Error rather than a lexer failure.
	Error

	// EOF is the sentinel kind yielded by a TokenSource for any index at or
	// past the end of the token stream. It never appears in a tree.
	EOF

	// Terminals.

	Whitespace
	Comment
	Ident
	Number
	String

	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	LAngle
	RAngle

	Colon
	Semicolon
	Comma
	Dot
	Equals
	Plus
	Minus
	Star
	Slash
	Bang
	Ampersand
	Bar

	AmpAmp
	BarBar
	EqEq
	BangEq
	LAngleEq
	RAngleEq
	Arrow
	ColonColon
	Ellipsis

	KwLet
	KwFn
	KwType
	KwImport
	KwReturn
	KwAs

	// Non-terminals.

	Module
	Name
	ScopedName
	NameRef

	BasicType
	PointerType

	ParamList
	Param
	VaParam

	LetItem
	FnItem
	TypeItem
	ImportItem
	ExprItem
	TypeMember

	Literal
	StructLiteral
	PrefixExpr
	BinExpr
	ParenExpr
	BlockExpr
	ReturnExpr
	CallExpr
	IndexExpr
	AsExpr

	kindCount // Must be last.
)

// firstNonTerminal is the boundary between token kinds and node kinds.
const firstNonTerminal = Module

var kindNames = [kindCount]string{
	Tombstone: "Tombstone",
	Error:     "Error",
	EOF:       "EOF",

	Whitespace: "Whitespace",
	Comment:    "Comment",
	Ident:      "Ident",
	Number:     "Number",
	String:     "String",

	LParen:   "LParen",
	RParen:   "RParen",
	LBrace:   "LBrace",
	RBrace:   "RBrace",
	LBracket: "LBracket",
	RBracket: "RBracket",
	LAngle:   "LAngle",
	RAngle:   "RAngle",

	Colon:     "Colon",
	Semicolon: "Semicolon",
	Comma:     "Comma",
	Dot:       "Dot",
	Equals:    "Equals",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Bang:      "Bang",
	Ampersand: "Ampersand",
	Bar:       "Bar",

	AmpAmp:     "AmpAmp",
	BarBar:     "BarBar",
	EqEq:       "EqEq",
	BangEq:     "BangEq",
	LAngleEq:   "LAngleEq",
	RAngleEq:   "RAngleEq",
	Arrow:      "Arrow",
	ColonColon: "ColonColon",
	Ellipsis:   "Ellipsis",

	KwLet:    "KwLet",
	KwFn:     "KwFn",
	KwType:   "KwType",
	KwImport: "KwImport",
	KwReturn: "KwReturn",
	KwAs:     "KwAs",

	Module:     "Module",
	Name:       "Name",
	ScopedName: "ScopedName",
	NameRef:    "NameRef",

	BasicType:   "BasicType",
	PointerType: "PointerType",

	ParamList: "ParamList",
	Param:     "Param",
	VaParam:   "VaParam",

	LetItem:    "LetItem",
	FnItem:     "FnItem",
	TypeItem:   "TypeItem",
	ImportItem: "ImportItem",
	ExprItem:   "ExprItem",
	TypeMember: "TypeMember",

	Literal:       "Literal",
	StructLiteral: "StructLiteral",
	PrefixExpr:    "PrefixExpr",
	BinExpr:       "BinExpr",
	ParenExpr:     "ParenExpr",
	BlockExpr:     "BlockExpr",
	ReturnExpr:    "ReturnExpr",
	CallExpr:      "CallExpr",
	IndexExpr:     "IndexExpr",
	AsExpr:        "AsExpr",
}

// IsTerminal returns whether this kind tags a token rather than a node.
//
// The sentinels Tombstone and EOF are neither; IsTerminal returns false
// for them. Error counts as a terminal, since error tokens are how
// unrecognized input is kept in the tree.
func (k Kind) IsTerminal() bool {
	return k == Error || (k >= Whitespace && k < firstNonTerminal)
}

// IsTrivia returns whether this kind tags a non-semantic token that is
// retained only for losslessness.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("syntax.Kind(%d)", uint8(k))
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// KindByName returns the kind with the given [Kind.String] name. Used by
// tools and test fixtures that spell kinds out in text.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
