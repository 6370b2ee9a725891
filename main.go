package main

import "companygen/cmd"

func main() {
	cmd.Execute()
}
