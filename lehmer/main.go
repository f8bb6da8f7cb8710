package main

import (
	"github.com/tutils/lehmer/cmd"
)

func main() {
	cmd.Execute()
}
