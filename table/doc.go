// Package table renders package report's row types as fixed-width text,
// CSV, TSV, or JSON.
//
// Grounded on original_source/src/find_relatives_table.cpp,
// compare_witnesses.cpp, optimize_substemmata_table.cpp, and
// enumerate_relationships_table.cpp's four render methods per table:
// fixed-width columns via constant field widths (imitating iomanip's
// setw/setprecision), comma- and tab-joined rows, and a JSON array. Numeric
// costs and percentages are rendered to 3 decimal places; a witness with no
// substemma cost (not a potential ancestor) renders an empty cost field
// rather than a sentinel value.
package table
