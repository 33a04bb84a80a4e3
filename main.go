package main

import "github.com/dotcommander/geoscore/cmd"

func main() {
	cmd.Execute()
}
