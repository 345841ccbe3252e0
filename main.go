package main

import "github.com/wundergraph/graphql-browser/cmd"

func main() {
	cmd.Execute()
}
