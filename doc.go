// Package marina keeps the books of a small marina: which boats are moored
// or stored, where exactly they are, and how much each owner owes.
//
// The core functionalities include:
//   - Registry: an in-memory, name-ordered collection of boats, capped at
//     Capacity entries, with sorted insertion, lookup and removal by name.
//     Names compare case-insensitively but keep their original case.
//   - Billing: the monthly charge of every boat is its length times the
//     rate of its placement (slip, land, trailer or storage).
//   - Payments: balances are reduced by payments that never exceed the
//     amount owed.
//   - Data Persistence: the registry is read from and written to a plain
//     text file, one boat per line, five comma separated columns.
//
// This package serves as the foundational logic for the `bms` command-line
// tool.
package marina
