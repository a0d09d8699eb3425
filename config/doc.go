// Package config defines the YAML configuration of the wordvec CLI: where the
// embedding table and document corpus live and the default query settings.
package config
