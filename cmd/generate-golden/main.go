// Command generate-golden rewrites the Sierpinski golden files used by the
// sierpinski package tests.
//
//	go run ./cmd/generate-golden -max 5 -dir internal/sierpinski/testdata
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/fractalcmp/internal/logging"
	"github.com/agbru/fractalcmp/internal/sierpinski"
)

func main() {
	maxDepth := flag.Int("max", 5, "highest depth to generate")
	dir := flag.String("dir", filepath.Join("internal", "sierpinski", "testdata"), "output directory")
	flag.Parse()

	logger := logging.NewLogger(os.Stderr, "generate-golden")
	written, err := writeGolden(*dir, *maxDepth)
	if err != nil {
		logger.Error("generating golden files failed", err, logging.String("dir", *dir))
		os.Exit(1)
	}
	for _, path := range written {
		logger.Info("wrote golden file", logging.String("path", path))
	}
}

// goldenName returns the file name of the golden file for depth.
func goldenName(depth int) string {
	return fmt.Sprintf("sierpinski_depth%d.golden", depth)
}

// writeGolden writes one golden file per depth 0..maxDepth into dir and
// returns the written paths.
func writeGolden(dir string, maxDepth int) ([]string, error) {
	if err := sierpinski.ValidateDepth(maxDepth); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	paths := make([]string, 0, maxDepth+1)
	for depth := 0; depth <= maxDepth; depth++ {
		path := filepath.Join(dir, goldenName(depth))
		if err := os.WriteFile(path, []byte(sierpinski.Render(depth)), 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
