package main

import "github.com/jpl-au/biblinks/cmd"

func main() {
	cmd.Execute()
}
