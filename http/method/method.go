package method

import "strings"

//go:generate stringer -type=Kind
type Kind uint8

const (
	// Extension is any token other than the recognized ones. The token itself is
	// kept in Method.Token
	Extension Kind = iota
	GET
	HEAD
	POST
)

// List contains all the recognized methods, Extension excluded
var List = []Kind{GET, HEAD, POST}

// Method is either one of the recognized methods or an extension one, carrying
// the token as it was received
type Method struct {
	Kind  Kind
	Token string
}

// Parse never fails: anything unrecognized becomes an extension method. Comparison
// is case-sensitive, so "get" is an extension too. The token must not be empty
func Parse(str string) Method {
	switch str {
	case "GET":
		return Method{Kind: GET, Token: "GET"}
	case "HEAD":
		return Method{Kind: HEAD, Token: "HEAD"}
	case "POST":
		return Method{Kind: POST, Token: "POST"}
	}

	return Method{Kind: Extension, Token: strings.Clone(str)}
}

func (m Method) IsExtension() bool {
	return m.Kind == Extension
}

// String returns the method token exactly as it appears on the wire
func (m Method) String() string {
	return m.Token
}
