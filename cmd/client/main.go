package main

import "shipyard/cmd/client/cmd"

func main() {
	cmd.Execute()
}
