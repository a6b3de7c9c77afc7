package main

import "pendant/cmd"

func main() {
	cmd.Execute()
}
