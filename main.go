package main

import "github.com/zigbeenet/zcl-gen/cmd"

// main is the entry point of the zcl-gen CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
