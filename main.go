// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the Restaurant AI CLI application.
package main

import (
	"restaurantai/cli/cmd"
)

func main() {
	cmd.Execute()
}
