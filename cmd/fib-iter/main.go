package main

import (
	"tengebench/internal/appshell"
	"tengebench/internal/benchapp"
)

func main() { appshell.Main(benchapp.FibIter) }
