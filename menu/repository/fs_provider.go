// Package repository implements menu provider adapters.
package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
	"github.com/reglet-dev/reglet-nav-sdk/menu/ports"
	"github.com/reglet-dev/reglet-nav-sdk/menu/resolvers"
	"github.com/reglet-dev/reglet-nav-sdk/parser"
)

const (
	manifestFile = "nav.yaml"
	yamlMenuFile = "menu.yaml"
	jsonMenuFile = "menu.json"
)

// Manifest describes a plugin directory to the provider.
type Manifest struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Requires string `yaml:"requires"`
}

// FSMenuProvider implements ports.MenuProvider by scanning a directory
// of plugin subdirectories, each carrying a nav.yaml manifest and a
// menu.yaml or menu.json document.
type FSMenuProvider struct {
	root   string
	compat *resolvers.HostCompat
	logger *slog.Logger

	yamlParser parser.DocumentParser
	jsonParser parser.DocumentParser
}

// FSMenuProviderOption configures an FSMenuProvider.
type FSMenuProviderOption func(*FSMenuProvider) error

// WithHostVersion enables gating on each manifest's requires constraint.
func WithHostVersion(version string) FSMenuProviderOption {
	return func(p *FSMenuProvider) error {
		compat, err := resolvers.NewHostCompat(version)
		if err != nil {
			return err
		}
		p.compat = compat
		return nil
	}
}

// WithLogger sets a custom logger for the provider.
func WithLogger(logger *slog.Logger) FSMenuProviderOption {
	return func(p *FSMenuProvider) error {
		p.logger = logger
		return nil
	}
}

// NewFSMenuProvider creates a filesystem-based menu provider rooted at root.
func NewFSMenuProvider(root string, opts ...FSMenuProviderOption) (*FSMenuProvider, error) {
	if root == "" {
		return nil, fmt.Errorf("provider root must not be empty")
	}

	p := &FSMenuProvider{
		root:       root,
		logger:     slog.Default(),
		yamlParser: parser.NewYamlDocumentParser(),
		jsonParser: parser.NewJSONDocumentParser(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ListPlugins scans the root directory and returns a handle per plugin
// whose manifest is readable and whose requirement matches the host.
func (p *FSMenuProvider) ListPlugins(ctx context.Context) (map[string]ports.PluginHandle, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("reading provider root %q: %w", p.root, err)
	}

	handles := make(map[string]ports.PluginHandle)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		handle, id, err := p.loadPlugin(entry.Name())
		if err != nil {
			return nil, err
		}
		if handle == nil {
			continue
		}

		handles[id] = handle
	}

	return handles, nil
}

// loadPlugin reads one plugin directory. A nil handle with nil error means
// the directory was skipped (no manifest, or host requirement not met).
func (p *FSMenuProvider) loadPlugin(dirName string) (ports.PluginHandle, string, error) {
	// Security: os.OpenRoot confines all reads to the plugin directory
	root, err := os.OpenRoot(p.root)
	if err != nil {
		return nil, "", fmt.Errorf("opening provider root %q: %w", p.root, err)
	}
	defer func() { _ = root.Close() }()

	pluginRoot, err := root.OpenRoot(dirName)
	if err != nil {
		return nil, "", fmt.Errorf("opening plugin directory %q: %w", dirName, err)
	}
	defer func() { _ = pluginRoot.Close() }()

	manifest, err := p.loadManifest(pluginRoot)
	if err != nil {
		return nil, "", fmt.Errorf("plugin %q: %w", dirName, err)
	}
	if manifest == nil {
		p.logger.Debug("skipping directory without manifest", "dir", dirName)
		return nil, "", nil
	}

	if p.compat != nil && manifest.Requires != "" {
		ok, err := p.compat.Supports(manifest.Requires)
		if err != nil {
			return nil, "", fmt.Errorf("plugin %q: %w", dirName, err)
		}
		if !ok {
			p.logger.Info("skipping plugin: host version requirement not met",
				"plugin", dirName, "requires", manifest.Requires)
			return nil, "", nil
		}
	}

	doc, err := p.loadDocument(pluginRoot)
	if err != nil {
		return nil, "", fmt.Errorf("plugin %q: %w", dirName, err)
	}
	if doc == nil {
		doc = &dto.Document{}
	}

	id := manifest.Name
	if id == "" {
		id = dirName
	}

	return &documentHandle{doc: doc}, id, nil
}

func (p *FSMenuProvider) loadManifest(root *os.Root) (*Manifest, error) {
	file, err := root.Open(manifestFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var manifest Manifest
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decoding manifest YAML: %w", err)
	}

	return &manifest, nil
}

// loadDocument finds the menu document, preferring YAML over JSON.
func (p *FSMenuProvider) loadDocument(root *os.Root) (*dto.Document, error) {
	if doc, err := p.parseFile(root, yamlMenuFile, p.yamlParser); err != nil || doc != nil {
		return doc, err
	}
	return p.parseFile(root, jsonMenuFile, p.jsonParser)
}

func (p *FSMenuProvider) parseFile(root *os.Root, name string, docParser parser.DocumentParser) (*dto.Document, error) {
	file, err := root.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	doc, err := docParser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", name, err)
	}

	return doc, nil
}

// documentHandle exposes a parsed document through ports.PluginHandle.
type documentHandle struct {
	doc *dto.Document
}

func (h *documentHandle) MenuItems() []dto.MenuItemDefinition {
	if len(h.doc.MenuItems) == 0 {
		return nil
	}
	return h.doc.MenuItems
}

func (h *documentHandle) QuickActions() []dto.QuickActionDefinition {
	if len(h.doc.QuickActions) == 0 {
		return nil
	}
	return h.doc.QuickActions
}
