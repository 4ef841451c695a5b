package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeDecoder()
	return c.normalizeLogging()
}

func (c *Config) normalizeOutput() error {
	if c.Output.Dir == "" {
		if value, ok := os.LookupEnv("TRACKGEN_OUTPUT_DIR"); ok {
			c.Output.Dir = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.BaseName = strings.TrimSpace(c.Output.BaseName)
	if c.Output.BaseName == "" {
		c.Output.BaseName = defaultBaseName
	}
	return nil
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := make(map[string]struct{}, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		normalized := strings.TrimSpace(ext)
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = []string{defaultExtension}
	}
	c.Scan.Extensions = exts
}

func (c *Config) normalizeDecoder() {
	if value, ok := os.LookupEnv("TRACKGEN_DECODER"); ok && strings.TrimSpace(value) != "" {
		c.Decoder.Backend = value
	}
	c.Decoder.Backend = strings.ToLower(strings.TrimSpace(c.Decoder.Backend))
	if c.Decoder.Backend == "" {
		c.Decoder.Backend = defaultBackend
	}
	c.Decoder.FFprobeBinary = strings.TrimSpace(c.Decoder.FFprobeBinary)
	if c.Decoder.FFprobeBinary == "" {
		c.Decoder.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return c.normalizeLogPaths()
}

func (c *Config) normalizeLogPaths() error {
	paths := make([]string, 0, len(c.Logging.OutputPaths))
	for _, p := range c.Logging.OutputPaths {
		p = strings.TrimSpace(p)
		switch p {
		case "":
			continue
		case "stdout", "stderr":
		default:
			expanded, err := expandPath(p)
			if err != nil {
				return fmt.Errorf("logging.output_paths: %w", err)
			}
			p = expanded
		}
		paths = append(paths, p)
	}
	c.Logging.OutputPaths = paths
	return nil
}
