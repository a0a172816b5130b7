// Package models defines the domain values shared by the form, the
// screen and the one-shot printer.
//
// # Inputs
//
//   - Bill: the raw text the user typed; empty means zero
//   - Split: number of people sharing the bill, always within [1, 100]
//   - Slider position: tip fraction in [0, 1], shown as a whole percent
//
// # Derived values
//
// Tip and per-person totals are never stored independently of their
// inputs. They are recomputed after every change and copied into a
// Summary when something outside the form needs them.
package models
