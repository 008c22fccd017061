// Package commands wires the latsym CLI: cell-file loading, the
// classification/symmetry/mesh/reduce subcommands, and their flags.
package commands
