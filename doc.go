// Package shortpos provides the types and functions to inspect the net short
// positions disclosed to the Finnish Financial Supervisory Authority.
//
// The core functionalities include:
//   - Records: an immutable view of one short position disclosure, decoded
//     from the authority's data-table JSON envelope.
//   - Queries: stateless functions over a list of records to find the largest
//     position, aggregate positions per issuer and search issuers by name.
//   - Percentages: a compact, exact representation of disclosed percentages
//     suited for display and aggregation.
//
// This package serves as the foundational logic for the `sps` command-line
// tool. Fetching lives in package fiva, rendering in package renderer.
package shortpos
