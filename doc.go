// Package fondo provides the core logic to track a personal fund-investment
// portfolio built out of periodic contributions.
//
// The core functionalities include:
//   - Ledger Management: an immutable, chronological record of fund purchase
//     contributions loaded from an external sheet.
//   - Price Oracle: current quotes fetched from one or two upstream pages and
//     reconciled by freshness, with a bounded in-process cache.
//   - Valuation Engine: a pure computation deriving per-contribution and
//     per-fund performance metrics from the ledger and a quote.
//   - Portfolio Aggregation: a one-shot rollup of per-fund metrics into a
//     portfolio-level summary.
//
// This package serves as the foundational logic for the `fdo` command-line
// tool; presentation (tables, metric cards, charts) lives in the renderer and
// chart packages.
package fondo
