// Package ast defines the parsed representation of a fan-out invocation.
//
// The model is deliberately shallow. Target types, trait references, bounds,
// where-predicates and bodies are opaque text captured with exact source
// spans: the engine duplicates structure, it never interprets the host
// language inside those fragments. A SharedSpec is produced once by the
// parser, consumed once by the expander, and discarded; SingleSpec values are
// produced by the expander and consumed once by the emitter. Nothing persists
// across invocations.
package ast
