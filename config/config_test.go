package config

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDomainDependencies(t *testing.T) {
	t.Run("loads a valid document", func(t *testing.T) {
		fsys := memfs.New()
		doc := `{
			"domainPath": "src/domain",
			"importAlias": "@/domain",
			"rootFiles": ["types"],
			"dependencies": {"task": ["step"], "app": ["*"]}
		}`
		require.NoError(t, util.WriteFile(fsys, "domain-dependencies.json", []byte(doc), 0o644))

		cfg, err := LoadDomainDependencies(fsys, "domain-dependencies.json")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "src/domain", cfg.DomainPath)
		assert.Equal(t, "@/domain", cfg.ImportAlias)
		assert.Equal(t, []string{"types"}, cfg.RootFiles)
		assert.Equal(t, []string{"step"}, cfg.Dependencies["task"])
		assert.Equal(t, []string{Wildcard}, cfg.Dependencies["app"])
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := LoadDomainDependencies(memfs.New(), "domain-dependencies.json")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		fsys := memfs.New()
		require.NoError(t, util.WriteFile(fsys, "domain-dependencies.json", []byte("{not json"), 0o644))

		_, err := LoadDomainDependencies(fsys, "domain-dependencies.json")
		assert.Error(t, err)
	})

	t.Run("schema violations are errors", func(t *testing.T) {
		tests := []struct {
			name string
			doc  string
		}{
			{"missing domainPath", `{"importAlias": "@/domain", "dependencies": {}}`},
			{"wrong dependency type", `{"domainPath": "src/domain", "importAlias": "@/domain", "dependencies": {"task": "step"}}`},
			{"unknown field", `{"domainPath": "src/domain", "importAlias": "@/domain", "dependencies": {}, "extra": 1}`},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				fsys := memfs.New()
				require.NoError(t, util.WriteFile(fsys, "domain-dependencies.json", []byte(tc.doc), 0o644))
				_, err := LoadDomainDependencies(fsys, "domain-dependencies.json")
				assert.Error(t, err)
			})
		}
	})
}

func TestLoadNoPrimitiveObsession(t *testing.T) {
	t.Run("loads a valid document", func(t *testing.T) {
		fsys := memfs.New()
		doc := `{
			"enforcedPaths": ["src/domain"],
			"exemptPaths": ["**/mapper.ts"],
			"exemptParams": ["count"],
			"primitives": ["string", "number", "boolean"]
		}`
		require.NoError(t, util.WriteFile(fsys, "no-primitive-obsession.json", []byte(doc), 0o644))

		cfg, err := LoadNoPrimitiveObsession(fsys, "no-primitive-obsession.json")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, []string{"src/domain"}, cfg.EnforcedPaths)
		assert.Equal(t, []string{"**/mapper.ts"}, cfg.ExemptPaths)
		assert.Equal(t, []string{"count"}, cfg.ExemptParams)
		assert.Equal(t, []string{"string", "number", "boolean"}, cfg.Primitives)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := LoadNoPrimitiveObsession(memfs.New(), "no-primitive-obsession.json")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("empty enforcedPaths is valid", func(t *testing.T) {
		fsys := memfs.New()
		doc := `{"enforcedPaths": [], "primitives": ["string"]}`
		require.NoError(t, util.WriteFile(fsys, "no-primitive-obsession.json", []byte(doc), 0o644))

		cfg, err := LoadNoPrimitiveObsession(fsys, "no-primitive-obsession.json")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Empty(t, cfg.EnforcedPaths)
	})

	t.Run("missing primitives is a schema violation", func(t *testing.T) {
		fsys := memfs.New()
		doc := `{"enforcedPaths": ["src/domain"]}`
		require.NoError(t, util.WriteFile(fsys, "no-primitive-obsession.json", []byte(doc), 0o644))

		_, err := LoadNoPrimitiveObsession(fsys, "no-primitive-obsession.json")
		assert.Error(t, err)
	})
}

func TestLoadRunConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadRunConfig(memfs.New(), ".archlint.yml")
		require.NoError(t, err)
		assert.Equal(t, DefaultRunConfig(), cfg)
	})

	t.Run("loads values and fills defaults", func(t *testing.T) {
		fsys := memfs.New()
		doc := "exclude:\n  - generated\n"
		require.NoError(t, util.WriteFile(fsys, ".archlint.yml", []byte(doc), 0o644))

		cfg, err := LoadRunConfig(fsys, ".archlint.yml")
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, ".", cfg.ConfigDir)
		assert.Equal(t, []string{"generated"}, cfg.Exclude)
	})

	t.Run("explicit values win", func(t *testing.T) {
		fsys := memfs.New()
		doc := "format: sarif\nconfigDir: lint-config\n"
		require.NoError(t, util.WriteFile(fsys, ".archlint.yml", []byte(doc), 0o644))

		cfg, err := LoadRunConfig(fsys, ".archlint.yml")
		require.NoError(t, err)
		assert.Equal(t, "sarif", cfg.Format)
		assert.Equal(t, "lint-config", cfg.ConfigDir)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		fsys := memfs.New()
		require.NoError(t, util.WriteFile(fsys, ".archlint.yml", []byte("format: [unclosed"), 0o644))

		_, err := LoadRunConfig(fsys, ".archlint.yml")
		assert.Error(t, err)
	})
}
