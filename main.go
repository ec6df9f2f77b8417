package main

import "github.com/frahmantamala/travel-budget/cmd"

func main() {
	cmd.Execute()
}
