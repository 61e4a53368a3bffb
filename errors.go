package xmlparser

import "errors"

var (
	// ErrMalformedTag reports a tag that violates the tag grammar.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrUnbalancedDocument reports tags that do not nest back to the root.
	ErrUnbalancedDocument = errors.New("unbalanced document")

	// ErrBufferOverflow reports a name, value or path segment exceeding the
	// configured scratch buffer length.
	ErrBufferOverflow = errors.New("scratch buffer is full")

	// ErrUnexpectedEOF reports input that ends in the middle of a tag,
	// attribute or declaration.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrNotFound reports a query that matched nothing. It is ordinary
	// control flow, not a parse failure.
	ErrNotFound = errors.New("not found")

	// ErrMalformedPath reports a query path that violates the path grammar.
	ErrMalformedPath = errors.New("malformed path")

	// ErrFreedNode reports an operation on an already destroyed node.
	ErrFreedNode = errors.New("node already destroyed")

	// ErrBadDeclaration reports a missing or unsupported first line.
	ErrBadDeclaration = errors.New("bad xml declaration")
)
