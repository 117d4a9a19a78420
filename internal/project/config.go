package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"lunar/internal/dialect"
)

// Config is the decoded lunar.toml.
type Config struct {
	Parse ParseConfig `toml:"parse"`
	Files FilesConfig `toml:"files"`
	Check CheckConfig `toml:"check"`
}

type ParseConfig struct {
	Dialect        string `toml:"dialect"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type CheckConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Manifest is a loaded lunar.toml and where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// Unknown lists keys present in the file that no field consumed.
	Unknown []string
}

var (
	// ErrInvalidDialect reports an unknown [parse].dialect value.
	ErrInvalidDialect = errors.New("invalid [parse].dialect")
	// ErrInvalidLimit reports a negative numeric setting.
	ErrInvalidLimit = errors.New("negative limit")
)

// Default returns the configuration used when no lunar.toml exists.
func Default() Config {
	return Config{
		Parse: ParseConfig{Dialect: "all", MaxDiagnostics: 100},
		Files: FilesConfig{Extensions: []string{".lua", ".luau"}},
		Check: CheckConfig{Jobs: 0, Cache: true},
	}
}

// Version returns the dialect selected by [parse].dialect.
func (c Config) Version() (dialect.Version, error) {
	v, err := dialect.Parse(c.Parse.Dialect)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDialect, err)
	}
	return v, nil
}

// Decode reads a config from r on top of the defaults.
func Decode(r io.Reader) (Config, []string, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}
	if len(cfg.Files.Exclude) == 0 {
		cfg.Files.Exclude = nil
	}
	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	sort.Strings(unknown)
	return cfg, unknown, nil
}

func (c Config) validate() error {
	if _, err := c.Version(); err != nil {
		return err
	}
	if c.Parse.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: [parse].max_diagnostics = %d", ErrInvalidLimit, c.Parse.MaxDiagnostics)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: [check].jobs = %d", ErrInvalidLimit, c.Check.Jobs)
	}
	for i, ext := range c.Files.Extensions {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Files.Extensions[i] = ext
	}
	return nil
}

// LoadFile parses the lunar.toml at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, unknown, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{
		Path:    path,
		Root:    filepath.Dir(path),
		Config:  cfg,
		Unknown: unknown,
	}, nil
}

// Load finds and parses lunar.toml starting at startDir. Without a
// manifest it returns the defaults rooted at startDir and ok=false.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		root, absErr := filepath.Abs(startDir)
		if absErr != nil {
			root = startDir
		}
		return &Manifest{Root: root, Config: Default()}, false, nil
	}
	m, err = LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// WriteDefault writes a commented default lunar.toml into dir. It refuses
// to overwrite an existing file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.WriteString(f, "# lunar project configuration\n"); err != nil {
		return "", err
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return "", err
	}
	return path, nil
}
