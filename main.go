package main

import "specsim/cmd"

func main() {
	cmd.Execute()
}
