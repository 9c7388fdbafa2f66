// cmd/strmatch/main.go
package main

import (
	"strmatch/internal/app"
	"strmatch/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
