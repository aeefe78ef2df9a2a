package export

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandtinct/internal/security"
)

//go:embed templates/*.tmpl
var templates embed.FS

// templateLoader reads a template from the override directory when present
// and falls back to the embedded copy.
type templateLoader struct {
	customDir string
	logger    hclog.Logger
}

func newTemplateLoader(customDir string, logger hclog.Logger) *templateLoader {
	return &templateLoader{customDir: customDir, logger: logger}
}

// Load returns the template content and whether it came from the override
// directory.
func (l *templateLoader) Load(name string) ([]byte, bool, error) {
	if l.customDir != "" {
		if err := security.ValidateFilePath(name, l.customDir); err != nil {
			return nil, false, fmt.Errorf("invalid template name %q: %w", name, err)
		}
		path := filepath.Join(l.customDir, name)
		content, err := os.ReadFile(path) // #nosec G304 - user supplied template directory
		if err == nil {
			l.logger.Debug("using custom template", "path", path)
			return content, true, nil
		}
		if !os.IsNotExist(err) {
			return nil, false, fmt.Errorf("failed to read custom template %q: %w", path, err)
		}
	}

	l.logger.Debug("using embedded template", "name", name)
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", name, err)
	}
	return content, false, nil
}

// TemplateNames lists the embedded templates that can be overridden.
func TemplateNames() ([]string, error) {
	var names []string
	err := fs.WalkDir(templates, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			names = append(names, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// DumpTemplates writes every embedded template into dir so it can be
// edited and passed back as an override directory. Existing files are
// kept unless force is set.
func DumpTemplates(dir string, force bool) ([]string, error) {
	names, err := TemplateNames()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				return written, fmt.Errorf("custom template already exists: %s (use --force to overwrite)", path)
			}
		}

		content, err := templates.ReadFile("templates/" + name)
		if err != nil {
			return written, fmt.Errorf("failed to read embedded template %q: %w", name, err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return written, fmt.Errorf("failed to write template to %q: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
