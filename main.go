package main

import "github.com/alexiusacademia/steelqty/cmd"

func main() {
	cmd.Execute()
}
