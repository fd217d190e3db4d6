package connectivity

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects the pairwise statistic.
type Mode int

const (
	// ModeCorrelation computes the Pearson correlation coefficient.
	ModeCorrelation Mode = iota
	// ModeCovariance computes the population covariance (divided by the length).
	ModeCovariance
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCorrelation:
		return "correlation"
	case ModeCovariance:
		return "covariance"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "correlation" or "covariance" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "correlation", "corr":
		return ModeCorrelation, nil
	case "covariance", "cov":
		return ModeCovariance, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeCorrelation && m != ModeCovariance {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Settings controls what an Engine computes. They are fixed for the
// lifetime of the engine.
//
// NoDemean and FisherZ only apply in correlation mode; covariance
// ignores both.
type Settings struct {
	Mode     Mode `yaml:"mode"`
	NoDemean bool `yaml:"no_demean"`
	FisherZ  bool `yaml:"fisher_z"`
}

// DefaultSettings returns plain demeaned correlation.
func DefaultSettings() Settings {
	return Settings{Mode: ModeCorrelation}
}

// Validate reports an unknown mode.
func (s Settings) Validate() error {
	if s.Mode != ModeCorrelation && s.Mode != ModeCovariance {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(s.Mode))
	}
	return nil
}

// noDemean reports whether sums are taken about zero instead of the mean.
func (s Settings) noDemean() bool {
	return s.Mode == ModeCorrelation && s.NoDemean
}

func (s Settings) fisherZ() bool {
	return s.Mode == ModeCorrelation && s.FisherZ
}

// LoadSettings decodes YAML settings from r. Missing keys keep their
// DefaultSettings values; an empty document yields the defaults.
//
//	mode: covariance
//	no_demean: false
//	fisher_z: false
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("connectivity: decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
