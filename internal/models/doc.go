// Package models defines the value types exchanged between the calculator
// and its callers.
//
// # Models
//
//   - TipState: the three inputs owned by the presentation layer
//   - TipSplit: the amounts derived from a TipState
//   - FormattedSplit: a TipSplit rendered for display
//
// None of these types are stored. A TipSplit is recomputed from its TipState
// every time one of the inputs changes, so there is no identity, no ID field
// and no timestamp on any of them.
//
// # Ownership
//
// The caller holds exactly one TipState and mutates it in response to user
// input (typing an amount, pressing the up/down person buttons, dragging the
// tip slider). After each mutation it asks the calculator to derive a fresh
// TipSplit. Nothing in this package mutates a derived value on its own.
package models
