package config

import (
	"flag"
	"os"
)

// parses CLI flags for the products subcommand
func ParseProductFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("products", flag.ExitOnError)
	path := fs.String("path", "./resources/products.json", "path to products seed file")
	clearFlag := fs.Bool("clear", false, "clear existing products before ingesting")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag}
}

// parses CLI flags for the materials subcommand
func ParseMaterialFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("materials", flag.ExitOnError)
	path := fs.String("path", "./resources/materials.json", "path to materials seed file")
	clearFlag := fs.Bool("clear", false, "clear existing materials before ingesting")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag}
}

// returns default flags for product ingestion
func DefaultProductFlags() Flags {
	return Flags{Path: "./resources/products.json", Clear: false}
}

// returns default flags for material ingestion
func DefaultMaterialFlags() Flags {
	return Flags{Path: "./resources/materials.json", Clear: false}
}
