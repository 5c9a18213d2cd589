// Command treepicker runs tree pickers over YAML tree documents.
package main

import "github.com/go-drift/treepicker/cmd/treepicker/cmd"

func main() {
	cmd.Main()
}
