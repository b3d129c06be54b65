// Package config loads batch edit jobs from YAML.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// ErrInvalid is returned by Validate for a malformed job.
var ErrInvalid = errors.New("invalid edit job")

// Kind names a built-in trajectory synthesizer.
type Kind string

const (
	KindNone      Kind = "none"
	KindCircle    Kind = "circle"
	KindMidpoint  Kind = "midpoint"
	KindOscillate Kind = "oscillate"
	KindTranslate Kind = "translate"
)

// Marker describes one marker appended by the job and how its trajectory is
// synthesized.
type Marker struct {
	Label     string    `yaml:"label" json:"label"`
	Kind      Kind      `yaml:"kind" json:"kind"`
	Radius    float64   `yaml:"radius" json:"radius,omitempty"`
	Period    float64   `yaml:"period" json:"period,omitempty"`
	Axis      string    `yaml:"axis" json:"axis,omitempty"`
	Amplitude float64   `yaml:"amplitude" json:"amplitude,omitempty"`
	From      []string  `yaml:"from" json:"from,omitempty"`
	Offset    []float64 `yaml:"offset" json:"offset,omitempty"`
}

// Config is an edit job.
type Config struct {
	Input     string   `yaml:"input" json:"input"`
	Output    string   `yaml:"output" json:"output"`
	ByteOrder string   `yaml:"byte_order" json:"byteOrder,omitempty"`
	LogLevel  string   `yaml:"log_level" json:"logLevel,omitempty"`
	Markers   []Marker `yaml:"markers" json:"markers"`
}

// LoadConfig reads filename, expands environment variables and decodes the
// YAML into config.
func LoadConfig(filename string, config interface{}) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	str := os.ExpandEnv(string(b))
	return yaml.Unmarshal([]byte(str), config)
}

// InitConfig loads and validates an edit job.
func InitConfig(filename string) (*Config, error) {
	c := new(Config)
	if err := LoadConfig(filename, c); err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	for i := range c.Markers {
		if c.Markers[i].Kind == "" {
			c.Markers[i].Kind = KindNone
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Labels returns the labels of the appended markers in order.
func (c *Config) Labels() []string {
	labels := make([]string, len(c.Markers))
	for i, m := range c.Markers {
		labels[i] = m.Label
	}
	return labels
}

// Order returns the output byte order.
func (c *Config) Order() (binary.Order, error) {
	return ParseOrder(c.ByteOrder)
}

// Validate checks paths, byte order and every marker definition.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.Wrap(ErrInvalid, "input is required")
	}
	if c.Output == "" {
		return errors.Wrap(ErrInvalid, "output is required")
	}
	if _, err := c.Order(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Markers))
	for i := range c.Markers {
		m := &c.Markers[i]
		if m.Label == "" {
			return errors.Wrapf(ErrInvalid, "marker %d has no label", i)
		}
		if seen[m.Label] {
			return errors.Wrapf(ErrInvalid, "duplicate marker %s", m.Label)
		}
		seen[m.Label] = true
		if err := m.Validate(); err != nil {
			return errors.WithMessagef(err, "marker %s", m.Label)
		}
	}
	return nil
}

// Validate checks the parameters required by the marker's kind.
func (m *Marker) Validate() error {
	switch m.Kind {
	case KindNone, "":
	case KindCircle:
		if m.Radius <= 0 || m.Period <= 0 {
			return errors.Wrap(ErrInvalid, "circle needs a positive radius and period")
		}
	case KindMidpoint:
		if len(m.From) != 2 {
			return errors.Wrap(ErrInvalid, "midpoint needs exactly two source labels")
		}
	case KindOscillate:
		if _, ok := AxisIndex(m.Axis); !ok {
			return errors.Wrapf(ErrInvalid, "unknown axis %q", m.Axis)
		}
		if m.Period <= 0 {
			return errors.Wrap(ErrInvalid, "oscillate needs a positive period")
		}
	case KindTranslate:
		if len(m.Offset) != 3 {
			return errors.Wrap(ErrInvalid, "translate needs a three component offset")
		}
		if len(m.From) != 1 {
			return errors.Wrap(ErrInvalid, "translate needs exactly one source label")
		}
	default:
		return errors.Wrapf(ErrInvalid, "unknown kind %q", m.Kind)
	}
	return nil
}

// AxisIndex maps "x", "y" or "z" to 0, 1 or 2.
func AxisIndex(axis string) (int, bool) {
	switch strings.ToLower(axis) {
	case "x":
		return 0, true
	case "y":
		return 1, true
	case "z":
		return 2, true
	}
	return 0, false
}

// ParseOrder maps a byte order name to a binary.Order. The empty string
// selects little-endian.
func ParseOrder(name string) (binary.Order, error) {
	switch strings.ToLower(name) {
	case "", "little", "le", "intel":
		return binary.LittleEndian, nil
	case "big", "be", "mips":
		return binary.BigEndian, nil
	case "middle", "dec":
		return binary.MiddleEndian, nil
	}
	return 0, errors.Wrapf(ErrInvalid, "unknown byte order %q", name)
}
