package main

import (
	"github.com/xiam/lread/cmd/lread/cmd"
)

func main() {
	cmd.Execute()
}
