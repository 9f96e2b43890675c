// cmd/main.go
package main

import (
	"go-bank-cli/app"
)

func main() {
	app.Run()
}
