// Package vega provides a crawl-and-resolve pipeline for catalog sites.
// It walks listing pages, follows each detail page through a chain of
// ad-laden intermediary pages, filters shortener redirects, and emits one
// normalized record (title, quality, final URL) per distinct content item.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package vega
