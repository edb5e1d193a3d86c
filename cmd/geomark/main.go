// Command geomark generates procedural geometric logo marks.
//
//	geomark generate --name Acme --industry fintech --out ./marks
//	geomark generate --name Acme --method radial-construct --seed acme-2
//	geomark serve --addr :8080
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geomark/construct"
	"github.com/katalvlaran/geomark/internal/server"
	"github.com/katalvlaran/geomark/logo"
)

const version = "0.1.0"

// svgFileMode is the permission set for written mark files.
const svgFileMode = 0o644

var (
	logLevel string

	brandName string
	indText   string
	aesText   string
	seedText  string
	methodID  string
	outDir    string

	serveAddr string

	rootCmd *cobra.Command
)

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "geomark",
		Level: hclog.LevelFromString(logLevel),
	})
}

func init() {
	rootCmd = &cobra.Command{
		Use:     "geomark",
		Short:   "Procedural geometric logo engine",
		Long:    "Deterministically generate abstract vector marks from a brand name, industry hint, aesthetic hint, and seed.",
		Version: version,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate logo variants as SVG",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&brandName, "name", "n", "", "Brand name (required)")
	generateCmd.Flags().StringVarP(&indText, "industry", "i", "", "Industry hint (freeform text)")
	generateCmd.Flags().StringVarP(&aesText, "aesthetic", "a", "", "Aesthetic (minimalist, tech, nature, bold)")
	generateCmd.Flags().StringVarP(&seedText, "seed", "s", "", "Explicit seed (defaults to the brand name)")
	generateCmd.Flags().StringVarP(&methodID, "method", "m", "", "Generate a single method only (e.g. radial-construct)")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (prints to stdout when empty)")
	if err := generateCmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to GEOMARK_ADDR or :8080)")

	rootCmd.AddCommand(generateCmd, serveCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	opts := logo.Options{Aesthetic: aesText, Industry: indText, Seed: seedText}

	var results []logo.Result
	if methodID != "" {
		method, err := construct.ParseMethod(methodID)
		if err != nil {
			return err
		}
		result, err := logo.GenerateOne(brandName, method, opts)
		if err != nil {
			return err
		}
		results = []logo.Result{result}
	} else {
		results = logo.Generate(brandName, opts)
	}

	if outDir == "" {
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.SVG)
		}

		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for i, r := range results {
		file := filepath.Join(outDir, fmt.Sprintf("%s-%d-%s.svg", slugify(brandName), i+1, r.MethodName))
		if err := os.WriteFile(file, []byte(r.SVG), svgFileMode); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		log.Info("wrote mark", "file", file, "method", r.MethodName, "aesthetic", r.AestheticName)
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	log := newLogger()
	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("GEOMARK_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	log.Info("starting server", "addr", addr)

	return server.NewRouter(log).Run(addr)
}

// slugify reduces a brand name to a safe file-name stem.
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "mark"
	}

	return string(out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
