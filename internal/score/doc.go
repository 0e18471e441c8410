// Package score computes the coverage/accuracy heuristic over an extracted
// Requirement set: how many expected RFP categories are present, boosted
// when keywords are available and optionally penalized for missing critical
// categories. The score is a crude coverage gauge, not a quality measure;
// calling UIs should present it as such.
package score
