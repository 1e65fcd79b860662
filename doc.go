// Package formulath is a pre-commit analysis toolkit for spreadsheet-like
// formulas embedded in a parametric object model: each parameter may hold a
// formula that references other parameters by name, and every proposed
// formula edit must be vetted before it reaches the host store.
//
// 🚀 What is formulath?
//
//	A small, deterministic library that brings together:
//		• Tokenization: boundary-delimited name extraction with string-literal
//		  stripping and longest-name-first masking
//		• Reference resolution: which parameters a formula mentions, and which
//		  tokens resolve to nothing
//		• Dependency navigation: downstream (dependencies) and upstream
//		  (dependents) edges, derived on demand — never cached
//		• Cycle detection: would committing this formula close a reference
//		  loop, and through exactly which path?
//		• Guarded mutation: a validation pipeline that only commits once every
//		  check passes, reporting typed, diagnostic-rich failures
//
// ✨ Why choose formulath?
//
//   - Pure functions over a caller-held snapshot – no I/O, no hidden state
//   - Exact diagnostics – unknown tokens, offending names, full cycle paths
//   - Dialect-aware – boundary characters and reserved function names are
//     per-instance configuration, not process-wide constants
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/   — Parameter, ID, Set accessor interfaces & the MemSet reference store
//	token/  — formula tokenizer: masking, extraction, invalid-token detection
//	refs/   — reference resolver & dependency navigator
//	cycle/  — would-cycle detector & recalculation ordering
//	guard/  — formula mutation guard & error taxonomy
//
// Quick ASCII example:
//
//	Width Offset ──▶ Width        (formula "Width * 2")
//	Width        ──▶ ???          (proposing "Width Offset" would close a loop)
//
// Dive into each package's doc.go for contracts, complexity, and examples.
//
//	go get github.com/katalvlaran/formulath
package formulath
