package main

import "biokit_go/cmd"

func main() {
	cmd.Execute()
}
