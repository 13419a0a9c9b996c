// Command suokif compiles SUO-KIF files and searches them for symbols.
//
// Usage:
//
//	# Print the AST of a file
//	suokif compile Merge.kif
//
//	# Only lines 10 to 20, as YAML
//	suokif compile Merge.kif --start-line 10 --end-line 20 --format yaml
//
//	# Where is a symbol used?
//	suokif find Merge.kif Human
//
//	# Interactive shell
//	suokif repl
//
//	# Recompile on every save
//	suokif watch Merge.kif
package main

func main() {
	Execute()
}
