// Package xmlparser reads a restrictive, well-formed XML dialect into an
// in-memory node tree and answers slash-delimited path queries against it.
//
// The dialect has no entities, CDATA, comments, namespaces or processing
// instructions beyond the mandatory declaration line. Parsing is a single
// forward pass; a failed parse never hands out a partial tree. Trees are
// not safe for concurrent mutation: one parser builds them, and concurrent
// readers must not overlap with Destroy or Detach.
package xmlparser
