// Package helpers contains grammar fragments built on pex: quoted and
// fenced strings, comments, numeric, hex colour and unicode escape
// literals, and delimited lists.
//
// Every helper is either a pex.Rule or a small configuration struct with a
// Parse method, so that it can be passed to any combinator.
package helpers
