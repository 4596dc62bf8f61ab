// Command formulactl evaluates formulas from the command line.
//
// Commands:
//
//	formulactl tools [-remote URL] [-category C]
//	formulactl discover [-remote URL] [-limit N] <query>
//	formulactl run [-remote URL] [-format json|yaml|toml] [-concurrency N] <file>
//
// Without -remote, calls run against an in-process registry. run exits 1
// when any call misses its expectation.
package main
