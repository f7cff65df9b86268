// Package model provides the intermediate representation (IR) for
// reconstructed document content.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a Word document. All parsing and reconstruction
// operations ultimately produce these types, making them the primary API for
// consuming extracted content.
//
// # Document Structure
//
// The [Document] type represents a complete document with metadata and an
// ordered element stream:
//
//	doc := model.NewDocument("report")
//	doc.Elements = append(doc.Elements, &model.Heading{Level: 1, Text: "Intro"})
//
// The order of [Document.Elements] is the document's reading order and is
// preserved exactly through every transformation pass.
//
// # Elements
//
// All document content implements the [Element] interface. The concrete
// types are:
//
//   - [Paragraph] - formatted text runs
//   - [Heading] - headings (levels 1-6), optionally numbered
//   - [List] - ordered or unordered lists
//   - [Table] - tables with typed cells and layout metadata
//   - [Image] - embedded images
//   - [Equation] - display math (LaTeX plus plain-text fallback)
//   - [PageBreak] - explicit page breaks
//
// # Runs
//
// Text content is carried as [FormattedRun] values. Adjacent runs with
// identical [TextFormatting] are merged by [ConsolidateRuns].
//
// # Queries
//
// [Search] performs case-insensitive substring search across every element's
// flattened text; [Outline] produces one entry per heading.
package model
