// Package metasearch consolidates result listings from several search
// engines into one deduplicated, categorized and diversity-bounded list.
//
// This package contains domain types, interfaces and the consolidation
// pipeline, following Ben Johnson's Standard Package Layout.
// Implementations that depend on third-party code live in subdirectories
// named after their primary dependency (e.g., goquery/, etree/, publicsuffix/).
package metasearch
