package main

import "github.com/nahidff/likebot/internal/cli"

func main() {
	cli.Execute()
}
