// Package expense provides the types and functions behind the `et` personal
// expense tracker. It is local-first: every expense lives in a single JSON
// document owned by the user, read in full and rewritten in full by each
// command.
//
// The core functionalities include:
//   - Expense records: dated, described, strictly positive decimal amounts
//     identified by a sequential integer id.
//   - Ledger: the ordered, in-memory sequence of expenses with add, delete,
//     update and total operations.
//   - Store: loading and saving the ledger to the store document, tolerant of a
//     missing file and explicit about a corrupted one.
//   - Formatting and export: currency rendering of amounts and CSV, JSON or
//     YAML export of the ledger.
//
// The store has no locking. Two invocations racing on the same file can lose
// an update, the last save wins.
//
// This package serves as the foundational logic for the `et` command-line
// tool.
package expense
