package config

import (
	"encoding/json"
	"fmt"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"os"
	"path/filepath"
	"strings"
)

// GetConfig builds a Config from the --config file, the --set overrides and --src-root.
func GetConfig(ctx *cli.Context) (*Config, error) {
	path := DefaultConfigPath
	if file := ctx.String(FileFlag.Name); file != "" {
		path = file
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		log.Warn("err loading json file", "err", err.Error())
		return nil, err
	}
	if err = ApplySetFlags(overrides, ctx.StringSlice(SetFlag.Name)); err != nil {
		return nil, err
	}

	srcRoot := ctx.String(SrcRootFlag.Name)
	if srcRoot == "" {
		srcRoot = DefaultSrcRoot
	}
	log.Debug("Loaded config", "path", path, "srcRoot", srcRoot, "keys", len(overrides))

	return New(srcRoot, overrides)
}

// LoadOverrides reads a flat JSON object of string values.
func LoadOverrides(file string) (map[string]string, error) {
	ext := filepath.Ext(file)
	if ext != ".json" {
		return nil, fmt.Errorf("unrecognized extention: %s", ext)
	}
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	log.Debug("Loading configuration", "path", filepath.Clean(fp))

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	overrides := make(map[string]string)
	if err = json.NewDecoder(f).Decode(&overrides); err != nil {
		return nil, errors.Wrapf(err, "decode %s", file)
	}
	// a literal null leaves the map nil
	if overrides == nil {
		overrides = make(map[string]string)
	}
	return overrides, nil
}

// ApplySetFlags merges KEY=VALUE pairs into overrides, later pairs win.
func ApplySetFlags(overrides map[string]string, pairs []string) error {
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid override %q, expected KEY=VALUE", pair)
		}
		overrides[k] = v
	}
	return nil
}
