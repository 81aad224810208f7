// Command quill renders and executes SQL statements described by YAML
// documents.
//
// Usage:
//
//	quill [flags] <command>
//
// Commands:
//   - render: print the SQL and parameters of a statement document
//   - exec: run a statement document against the configured database
//   - config show: print the effective configuration
//   - version: print version information
//
// Configuration is read from quill.yaml (discovered upward from the working
// directory) and QUILL_* environment variables.
package main

func main() {
	Execute()
}
