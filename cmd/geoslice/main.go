package main

import "github.com/aweris/geoslice/cmd/geoslice/cmd"

func main() {
	cmd.Execute()
}
