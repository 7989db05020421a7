// Package suggest implements the fuzzy matching behind the report wizard's
// suggestion dropdowns.
//
// Match combines three sources, in priority order: a small correction table
// for known misspellings, case-insensitive substring matches ranked by fuzzy
// score, and near-typos within a bounded edit distance of a candidate prefix
// (2 against the whole string, 1 against any single word). Results are
// de-duplicated and capped at MaxResults.
//
// Breweries and Beers wrap Match into rendered dropdown lists, appending a
// create-new row whenever the query does not name an existing entry exactly.
package suggest
