package main

import "github.com/mcoot/blackjack-go/internal/cli"

func main() {
	cli.Execute()
}
