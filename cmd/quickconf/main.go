package main

import (
	_ "quickconf/docs"
	"quickconf/internal/cli"
)

// @title quickconf API
// @version 1.0
// @description Conference schedule API: day grid, talks, live "now" indicator and iCalendar export.
// @BasePath /
func main() {
	cli.Execute()
}
