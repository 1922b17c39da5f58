package main

import (
	"github.com/justlaunchdoom/jld/internal/logger"
)

func main() {
	defer logger.Close() // Ensure log file is closed on exit
	Execute()
}
