package main

import (
	"github.com/modfetch/modfetch/cmd"
)

func main() {
	cmd.Execute()
}
