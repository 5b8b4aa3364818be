package main

import "github.com/shankar0909/stepzen-gql-soap/internal/cli"

func main() {
	cli.Execute()
}
