// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vec_cosine,
// vec_l2 and vec_norm SQL scalar functions over embedding BLOBs.
package engine
