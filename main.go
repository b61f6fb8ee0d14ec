package main

import "github.com/kamal-hamza/haste-cli/cmd"

func main() {
	cmd.Execute()
}
