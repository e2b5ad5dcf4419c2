package main

import (
	"shuho/cmd/cmd"
	"shuho/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
