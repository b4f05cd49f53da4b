package main

import (
	"github.com/arloliu/xcxsave/cmd/xcxsave/cmd"
)

func main() {
	cmd.Execute()
}
