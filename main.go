package main

import "cricket/cmd"

func main() {
	cmd.Execute()
}
