// Package models defines the core domain models for Tabsplit.
//
// # Persisted Models
//
//   - Person: A registered participant, identified by a unique name
//   - Bill: A shared expense split equally among its included participants
//
// Participants are identified by name strings; there are no user accounts.
//
// # Derived Models
//
// The following models are never persisted. They are recomputed from scratch
// on every read:
//
//   - Balances: net position per person (positive = is owed money)
//   - Transfer: one settlement instruction in the settlement plan
//   - Summary: the full snapshot served to the UI
//
// # Design Principles
//
//  1. **Name-keyed simplicity**: people are keyed by name, bills reference
//     them by name with no referential-integrity enforcement
//  2. **Derived data stays derived**: balances and the settlement plan are
//     pure functions of (people, bills) and are never written back
//  3. **Avoid circular references**: models reference each other by name
//     strings, not pointers
package models
