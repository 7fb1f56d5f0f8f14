// Package sitebook provides the ledger and costing engine for a small
// contracting business: inventory stock, purchase receipts and project
// material consumption, kept financially consistent across the three
// records.
//
// The core functionalities include:
//   - Catalog Store: the single source of truth for stock level and
//     weighted-average unit cost per product. Cost is reblended on every
//     purchase receipt and never on consumption.
//   - Purchase Ledger: vendor purchases recorded as atomic units, with
//     per-line GST and aggregate totals, feeding quantity and cost deltas
//     into the catalog.
//   - Project Costing Ledger: project lifecycle (Planning, In Progress,
//     Completed, On Hold) and a material-consumption log where every debit
//     is frozen at the unit cost of the instant it happened.
//   - Snapshot Service: whole-state export and import as a single JSON
//     document, plus sample-data seeding for first runs.
//
// All money and quantity arithmetic is exact (decimal based); rounding
// happens only at presentation time. This package is the foundational
// logic for the `sbk` command-line tool.
package sitebook
