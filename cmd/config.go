package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/viktordanov/plantgen"
)

// loadPlant loads .env, then the plant definition, and builds it.
func loadPlant(ctx *Context) (*plantgen.Definition, *plantgen.Plant, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if ctx.Verbose {
		if fileExists(ctx.Config) {
			color.Blue("Loading plant definition from %s", ctx.Config)
		} else {
			color.Blue("%s not found, using the default plant", ctx.Config)
		}
	}

	def, err := plantgen.LoadDefinition(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load definition: %w", err)
	}

	plant, err := def.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build plant %q: %w", def.Name, err)
	}

	return def, plant, nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// numberedPath inserts -NN before the extension of path.
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%02d%s", strings.TrimSuffix(path, ext), n, ext)
}
