package observer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownProfile is returned when a named profile is not in the store.
var ErrUnknownProfile = errors.New("observer: unknown profile")

// profile is the on-disk shape of one observer entry.
type profile struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Elevation float64 `yaml:"elevation"`
	Timezone  string  `yaml:"timezone,omitempty"`
}

// store is the on-disk shape of the profile file: one section per profile
// plus the name of the default.
type store struct {
	Default   string             `yaml:"default,omitempty"`
	Observers map[string]profile `yaml:"observers"`
}

// Profiles is the per-user observer profile store, persisted as YAML at
// ConfigPath. The computation packages never read it; only profile
// management and the CLI do.
type Profiles struct {
	path string
	data store
}

// ConfigPath returns the conventional per-user profile file location.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "observer: resolving config dir")
	}
	return filepath.Join(dir, "astral", "observers.yaml"), nil
}

// Load reads the profile store from path. A missing file yields an empty
// store rather than an error.
func Load(path string) (*Profiles, error) {
	p := &Profiles{path: path, data: store{Observers: map[string]profile{}}}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "observer: reading %s", path)
	}
	if err := yaml.Unmarshal(raw, &p.data); err != nil {
		return nil, errors.Wrapf(err, "observer: parsing %s", path)
	}
	if p.data.Observers == nil {
		p.data.Observers = map[string]profile{}
	}
	return p, nil
}

// Save writes the store back to its path, creating parent directories.
func (p *Profiles) Save() error {
	raw, err := yaml.Marshal(&p.data)
	if err != nil {
		return errors.Wrap(err, "observer: encoding profiles")
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return errors.Wrapf(err, "observer: creating %s", filepath.Dir(p.path))
	}
	return errors.Wrapf(os.WriteFile(p.path, raw, 0o644), "observer: writing %s", p.path)
}

// key normalizes a profile name for lookup.
func key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Add inserts or replaces a profile. The first profile added becomes the
// default.
func (p *Profiles) Add(o Observer) {
	k := key(o.Name)
	p.data.Observers[k] = profile{
		Latitude:  o.LatDeg(),
		Longitude: o.LonDeg(),
		Elevation: o.Elevation,
		Timezone:  o.Timezone,
	}
	if p.data.Default == "" {
		p.data.Default = k
	}
}

// Remove deletes a profile by name.
func (p *Profiles) Remove(name string) error {
	k := key(name)
	if _, ok := p.data.Observers[k]; !ok {
		return errors.Wrapf(ErrUnknownProfile, "%q", name)
	}
	delete(p.data.Observers, k)
	if p.data.Default == k {
		p.data.Default = ""
	}
	return nil
}

// SetDefault marks a profile as the default.
func (p *Profiles) SetDefault(name string) error {
	k := key(name)
	if _, ok := p.data.Observers[k]; !ok {
		return errors.Wrapf(ErrUnknownProfile, "%q", name)
	}
	p.data.Default = k
	return nil
}

// DefaultName returns the normalized name of the default profile, or "".
func (p *Profiles) DefaultName() string { return p.data.Default }

// Get resolves a profile by name. An empty name resolves the default.
func (p *Profiles) Get(name string) (Observer, error) {
	k := key(name)
	if name == "" {
		k = p.data.Default
	}
	entry, ok := p.data.Observers[k]
	if !ok {
		return Observer{}, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}
	return FromDegrees(k, entry.Latitude, entry.Longitude, entry.Elevation, entry.Timezone)
}

// Names lists the stored profile names in sorted order.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.data.Observers))
	for k := range p.data.Observers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
