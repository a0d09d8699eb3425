// Package corpus provides document collections consumed by the document
// similarity helpers: an in-memory corpus and a loader that tokenizes every
// file under an afs folder URL.
package corpus
