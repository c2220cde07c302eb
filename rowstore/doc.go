// Package rowstore stores variable-length rows of values contiguously.
//
// A row store is an Iliffe vector: every row lives in one flat data slice, and
// a slice of row ends marks where each row but the last one stops. The last
// row is everything after the last end.
//
//	rows:  [1 2 3] [] [4 5] [6]
//	data:  [1 2 3 4 5 6]
//	ends:  [3 3 5]
//
// Compared to [][]V, a row store saves one slice header per row and keeps all
// values in a single allocation, at the cost of rows being fixed once built.
//
// RowStore is read-only and is created with New, a Builder or FromPairs.
// Growable accepts new rows at the end and can pop its last row without
// copying it; see PoppedRow for the borrow rules that come with it.
package rowstore
