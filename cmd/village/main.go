package main

import "github.com/mcoot/villagegame/internal/cli"

func main() {
	cli.Execute()
}
