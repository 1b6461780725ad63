// Package corpus supplies source texts for model training: a SQLite-backed
// store of named corpora and loaders that read corpora from disk. Only the
// raw texts are persisted; trained models never are.
package corpus
