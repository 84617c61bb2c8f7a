package main

import "github.com/gaurav-prasanna/tohtml5/cmd"

func main() {
	cmd.Execute()
}
