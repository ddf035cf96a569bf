package main

import "showcase-portal-backend/internal/cli"

func main() {
	cli.Execute()
}
