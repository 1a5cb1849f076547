// Package writers turns aggregated benchmark summaries into serialized reports.
//
// Design:
//   - Writers own all presentation knowledge (csv, markdown, json, prom, table).
//   - results stays parsing and statistics only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
