// Package wikictx collects the content of corporate wiki spaces into a
// single plain-text context document suitable for an LLM workflow.
// Starting from one or more seed page URLs it discovers every page in the
// seed's space, follows a bounded number of links into other spaces and
// external sites, and aggregates the extracted text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/, gemini/);
// the traversal engine lives in crawl/.
package wikictx
