// Package wallet provides the types and pure computation routines to track
// personal investments (deposits, bonds, market instruments, precious metals,
// cryptocurrencies, collectibles), group them into wallets, and value them in
// a single main currency.
//
// The core is the valuation engine: given an investment's declared purchase
// terms, its value-calculation method, and a snapshot of external market,
// inflation and reference-rate data, it produces a current monetary value,
// optionally net of cancellation fees and income tax.
//
// The main functionalities are:
//   - Investment Model: closed sets of purchase shapes (fixed amount, integer
//     units, fractional units, weight) and valuation methods (manual, market
//     quote, cryptocurrency, interest accrual).
//   - Interest Accrual: calendar-aware walk over repeatable interest periods,
//     simple or compounding, with inflation and reference-rate additions.
//   - Net Value: cancellation-fee and income-tax resolution on top of the
//     gross value, driven by user settings.
//   - External Data: a read-only snapshot of exchange rates, cryptocurrency
//     rates, ticker quotes, inflation and reference-rate series, with
//     EUR-pivot currency conversion.
//   - Data Persistence: encoding and decoding of investments, wallets and
//     settings to human-readable, version-controllable formats (JSONL).
//
// This package serves as the foundational logic for the `wlt` command-line
// tool.
package wallet
