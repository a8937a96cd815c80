// Package leadgen finds prospective sales leads in Quora discussions.
// It searches for discussion threads matching a business description,
// extracts structured user interactions from each thread via a
// schema-constrained extraction service, flattens the results into a
// uniform row set, and exports the rows to a CSV file and a Google Sheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., firecrawl/, gemini/, csv/).
package leadgen
