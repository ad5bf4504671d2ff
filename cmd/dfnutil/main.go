package main

import "github.com/GriffinCanCode/dfnlib/internal/cli"

func main() {
	cli.Execute()
}
