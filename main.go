package main

import (
	"github.com/mj1618/yman/cmd"
	_ "github.com/mj1618/yman/internal/platform/linux"
)

func main() {
	cmd.Execute()
}
