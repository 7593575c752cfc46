/*
 * drift - Main Entry Point
 *
 * Bootstraps the drift command-line interface and delegates execution
 * to the root command.
 */
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
