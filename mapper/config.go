/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/code"
	"github.com/pelletier/go-toml/v2"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a mapper configuration cannot be
// decoded or contains out-of-range values.
var ErrInvalidConfig = errors.New("mapper: invalid config")

// maxGRPC is the highest canonical gRPC status code.
const maxGRPC = int(codes.Unauthenticated)

// Config is the file form of mapper rules:
//
//	[[default]]
//	band = "runtime_error"
//	http = 500
//	grpc = 13
//
//	[[override]]
//	code = 8001
//	http = 410
//
//	[[prefix]]
//	reason = "runtime.protocol_down"
//	grpc = 14
//
// In every rule http and grpc are optional, but at least one must be set.
// The same document can be written in YAML, see LoadConfigYAML.
type Config struct {
	Defaults  []DefaultRule  `toml:"default" yaml:"default"`
	Overrides []OverrideRule `toml:"override" yaml:"override"`
	Prefixes  []PrefixRule   `toml:"prefix" yaml:"prefix"`
}

// DefaultRule replaces the default statuses of a band.
type DefaultRule struct {
	Band string `toml:"band" yaml:"band"`
	HTTP *int   `toml:"http" yaml:"http"`
	GRPC *int   `toml:"grpc" yaml:"grpc"`
}

// OverrideRule pins the statuses of one reply code.
type OverrideRule struct {
	Code uint32 `toml:"code" yaml:"code"`
	HTTP *int   `toml:"http" yaml:"http"`
	GRPC *int   `toml:"grpc" yaml:"grpc"`
}

// PrefixRule maps every reason under a dotted prefix.
type PrefixRule struct {
	Reason string `toml:"reason" yaml:"reason"`
	HTTP   *int   `toml:"http" yaml:"http"`
	GRPC   *int   `toml:"grpc" yaml:"grpc"`
}

// LoadConfig decodes a TOML mapper configuration. Unknown keys are
// rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r)
	dec = dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigYAML decodes a YAML mapper configuration. Unknown keys are
// rejected and an empty document is an empty configuration.
func LoadConfigYAML(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile loads the named file, as YAML when its extension is
// .yaml or .yml and as TOML otherwise.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadConfigYAML(f)
	default:
		return LoadConfig(f)
	}
}

// Options validates the configuration and converts it into mapper options,
// in file order: defaults, then overrides, then prefixes.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	for i, d := range c.Defaults {
		b, err := code.ParseBand(d.Band)
		if err != nil {
			return nil, fmt.Errorf("%w: default[%d]: band %q", ErrInvalidConfig, i, d.Band)
		}
		if err := checkStatuses(d.HTTP, d.GRPC); err != nil {
			return nil, fmt.Errorf("%w: default[%d]: %w", ErrInvalidConfig, i, err)
		}
		if d.HTTP != nil {
			opts = append(opts, WithHTTPDefault(b, *d.HTTP))
		}
		if d.GRPC != nil {
			opts = append(opts, WithGRPCDefault(b, *d.GRPC))
		}
	}

	for i, o := range c.Overrides {
		rc := code.Code(o.Code)
		if !rc.Valid() {
			return nil, fmt.Errorf("%w: override[%d]: code %d out of range", ErrInvalidConfig, i, o.Code)
		}
		if err := checkStatuses(o.HTTP, o.GRPC); err != nil {
			return nil, fmt.Errorf("%w: override[%d]: %w", ErrInvalidConfig, i, err)
		}
		if o.HTTP != nil {
			opts = append(opts, WithHTTPOverride(rc, *o.HTTP))
		}
		if o.GRPC != nil {
			opts = append(opts, WithGRPCOverride(rc, *o.GRPC))
		}
	}

	for i, p := range c.Prefixes {
		if p.Reason == "" {
			return nil, fmt.Errorf("%w: prefix[%d]: empty reason", ErrInvalidConfig, i)
		}
		if err := checkStatuses(p.HTTP, p.GRPC); err != nil {
			return nil, fmt.Errorf("%w: prefix[%d]: %w", ErrInvalidConfig, i, err)
		}
		if p.HTTP != nil {
			opts = append(opts, WithHTTPPrefix(p.Reason, *p.HTTP))
		}
		if p.GRPC != nil {
			opts = append(opts, WithGRPCPrefix(p.Reason, *p.GRPC))
		}
	}

	return opts, nil
}

// Mapper builds a mapper from the library defaults plus the configuration.
func (c Config) Mapper() (apis.Mapper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	m, err := New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return m, nil
}

func checkStatuses(h, g *int) error {
	if h == nil && g == nil {
		return errors.New("one of http or grpc is required")
	}
	if h != nil && (*h < http.StatusContinue || *h > 599) {
		return fmt.Errorf("http status %d out of range", *h)
	}
	if g != nil && (*g < 0 || *g > maxGRPC) {
		return fmt.Errorf("grpc code %d out of range", *g)
	}
	return nil
}
