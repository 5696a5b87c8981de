package main

import (
	"github.com/sy4k1/gla-it-project/internal/server"
)

func main() {
	server.NewServer().Run()
}
