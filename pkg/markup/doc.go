// Package markup provides the XHTML tag builder and escaping helpers used by
// every widget's display path. Tags keep their attributes in insertion order
// so rendered markup is deterministic, which matters for CSS and JS hooks
// that key off attribute layout. Rich user-supplied content is routed through
// a bluemonday policy before it reaches the response stream.
package markup
