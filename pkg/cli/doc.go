// Package cli implements the formcheck command tree.
//
// formcheck compiles a descriptor document (see package loader) with the
// built-in validators and runs it against one or more state documents:
//
//	formcheck validate --rules signup.yaml state1.json state2.yaml
//	formcheck validate --rules signup.yaml --only EmailIsEmail --only EmailRequired state.json
//	formcheck rules --rules signup.yaml
//	formcheck kinds
//
// State files are validated concurrently; results are printed in argument
// order as json or yaml. validate returns ErrInvalidState when any state
// fails so the binary can exit non-zero.
package cli
