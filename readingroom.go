// Package readingroom provides a local archive of documents harvested from a
// paginated web listing. It crawls the listing for document links, downloads
// the binaries, extracts their text, indexes everything into a searchable
// store, and answers queries combining free-text search, date/size range
// filters, and user-curated tags.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, pdf/).
package readingroom
