// Package fincalc provides a set of pure, stateless financial calculators for
// personal-finance planning. Every calculator consumes plain value records
// supplied by the caller and produces plain result records; nothing here does
// I/O, owns state, or re-validates its inputs.
//
// The calculators are:
//   - Investment Projection: closed-form compound-interest and annuity math
//     with an inflation-adjusted real value.
//   - Monte Carlo Simulator: stochastic multi-path portfolio simulation with
//     log-normal monthly returns and yearly percentile bands.
//   - Debt Payoff Engine: multi-debt amortization under the avalanche or
//     snowball strategy, with minimum-payment and overpayment cascading.
//   - Recurring Pattern Detector: fuzzy grouping of transaction descriptions
//     and interval analysis to find recurring cash flows and project them
//     forward.
//   - Allocation Recommender: a rule table mapping age, withdrawal horizon
//     and withdrawal rate to a stock/bond/cash split and concrete low-cost
//     ETF picks.
//
// This package serves as the foundational logic for the `fcs` command-line
// tool, which handles file import/export and report rendering on top of it.
package fincalc
