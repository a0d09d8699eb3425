// Package loader reads pretrained word embeddings from any afs URL into an
// in-memory table. It understands the word2vec text format (also used by
// converted GloVe files, with or without the "<count> <dim>" header), the
// word2vec binary format, and gzip compressed variants of both.
package loader
