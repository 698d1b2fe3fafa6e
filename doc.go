// Package divtrack provides the functions and types to track a stock's
// dividend history and to turn it into return metrics. It is designed to be
// local-first and auditable: all market data is fetched on demand, computed
// tables are derived values, and the only state a user owns is the session
// transaction list.
//
// The core functionalities include:
//   - Dividend Aggregation: filtering dividend events by date range and
//     grouping them by calendar year with full-precision totals.
//   - Price Resolution: finding the best-available closing price for a target
//     date, using a bounded forward-looking window over gappy trading calendars.
//   - Yield Computation: joining yearly dividend totals with resolved
//     year-end prices into a naive dividend yield, keeping "no price" distinct
//     from a true zero yield.
//   - Transaction Ledger: evaluating user-entered buy/sell records
//     independently, each with its own resolved price and cumulative dividend
//     return since the transaction date.
//   - Data Exchange: importing transactions from tabular files and encoding
//     the session ledger in a human-readable JSONL format.
//
// This package serves as the foundational logic for the `dvt` command-line
// tool; remote collaborators (market data, news) live in their own
// subpackages behind small interfaces.
package divtrack
