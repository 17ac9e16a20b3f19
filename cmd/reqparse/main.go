package main

import "github.com/indigo-web/reqparse/internal/cli"

func main() {
	cli.Execute()
}
