package main

import "github.com/pfrederiksen/mensa-bot/internal/cli"

func main() {
	cli.Execute()
}
