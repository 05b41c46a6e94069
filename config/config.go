// Package config holds the typed configuration consumed by the
// configuration-driven rules, plus the loaders the driver uses to read it
// from disk. Rules receive these values at construction time and treat them
// as read-only; rule constructors assume a well-formed configuration, which
// is why loaders schema-validate documents before decoding them.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// Wildcard, inside an allowed-dependency list, permits imports from any
// domain.
const Wildcard = "*"

// DomainDependencies declares the domain layout and the allowed dependency
// edges between domains. The Dependencies map is the sole source of truth
// for the dependency graph: a domain absent from it allows nothing.
type DomainDependencies struct {
	// DomainPath is the filesystem path prefix under which domains live,
	// e.g. "src/domain".
	DomainPath string `json:"domainPath"`
	// ImportAlias is the import-alias prefix used in source code to
	// reference DomainPath, e.g. "@/domain".
	ImportAlias string `json:"importAlias"`
	// RootFiles lists path segments directly under DomainPath that are
	// domain-root infrastructure, not domains themselves.
	RootFiles []string `json:"rootFiles"`
	// Dependencies maps a domain name to the set of domain names it may
	// import from. A Wildcard entry permits any domain.
	Dependencies map[string][]string `json:"dependencies"`
}

// NoPrimitiveObsession declares where and how bare primitive parameter
// types are flagged.
type NoPrimitiveObsession struct {
	// EnforcedPaths are path substrings under which the rule applies.
	// Empty means the rule checks nothing.
	EnforcedPaths []string `json:"enforcedPaths"`
	// ExemptPaths are patterns for files the rule skips. A pattern starting
	// with "**/" matches by filename suffix, any other pattern matches by
	// substring containment.
	ExemptPaths []string `json:"exemptPaths"`
	// ExemptParams are parameter names that are always allowed regardless
	// of type.
	ExemptParams []string `json:"exemptParams"`
	// Primitives are the built-in type names that count as violations when
	// used without a branded type.
	Primitives []string `json:"primitives"`
}

// LoadDomainDependencies reads and validates a domain-dependencies.json
// document. A missing file is not an error: it returns (nil, nil) and the
// caller simply does not register the rule.
func LoadDomainDependencies(fsys billy.Filesystem, path string) (*DomainDependencies, error) {
	raw, ok, err := readIfExists(fsys, path)
	if err != nil || !ok {
		return nil, err
	}
	if err := validate(domainDependenciesSchema, "domain-dependencies.schema.json", raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	var cfg DomainDependencies
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadNoPrimitiveObsession reads and validates a no-primitive-obsession.json
// document. A missing file returns (nil, nil).
func LoadNoPrimitiveObsession(fsys billy.Filesystem, path string) (*NoPrimitiveObsession, error) {
	raw, ok, err := readIfExists(fsys, path)
	if err != nil || !ok {
		return nil, err
	}
	if err := validate(noPrimitiveObsessionSchema, "no-primitive-obsession.schema.json", raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	var cfg NoPrimitiveObsession
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}

// RunConfig is the optional .archlint.yml run configuration for the driver.
type RunConfig struct {
	// Format selects the output format: text, json or sarif.
	Format string `yaml:"format"`
	// Exclude lists path substrings to skip during file discovery.
	Exclude []string `yaml:"exclude"`
	// ConfigDir is the directory holding the per-rule JSON configuration
	// documents.
	ConfigDir string `yaml:"configDir"`
}

// DefaultRunConfig returns the run configuration used when no
// .archlint.yml exists.
func DefaultRunConfig() RunConfig {
	return RunConfig{Format: "text", ConfigDir: "."}
}

// LoadRunConfig reads the YAML run configuration at path, falling back to
// defaults for a missing file or missing fields.
func LoadRunConfig(fsys billy.Filesystem, path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	raw, ok, err := readIfExists(fsys, path)
	if err != nil || !ok {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = "."
	}
	return cfg, nil
}

// readIfExists reads path from fsys, reporting absence without error.
func readIfExists(fsys billy.Filesystem, path string) ([]byte, bool, error) {
	if _, err := fsys.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("config: stat %s: %w", path, err)
	}
	raw, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, false, fmt.Errorf("config: read %s: %w", path, err)
	}
	return raw, true, nil
}
