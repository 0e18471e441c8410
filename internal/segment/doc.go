// Package segment splits raw RFP text into titled sections and
// enumerable clause items.
//
// Section detection is line based: a line is treated as a heading when it
// carries a known heading keyword behind an optional numbered, lettered or
// roman-numeral prefix, when it has a decimal-numeric prefix ("2.3 Vendor
// Qualifications"), or when it is an ALL-CAPS line. Everything else
// accumulates into the current section's content. Clause splitting then
// breaks a section's content at line-start bullet, numbered-list or
// lettered-list markers.
//
// Both operations are pure functions over strings; Section and Clause
// values exist only for the duration of one extraction run.
package segment
