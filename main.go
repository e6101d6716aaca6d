package main

import "github.com/kasuboski/vodz/cmd"

func main() {
	cmd.Execute()
}
