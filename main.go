package main

import "github.com/mmuldo/coli/cmd"

func main() {
	cmd.Execute()
}
