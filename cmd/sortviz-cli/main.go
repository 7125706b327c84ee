// Package main is the headless CLI entry point for the sorting visualizer.
package main

func main() {
	Execute()
}
