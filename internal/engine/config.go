package engine

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/edgeguard/internal/model"
)

// UnitInfo is one entry of the engine's unit table
type UnitInfo struct {
	Shorthand string  `json:"shorthand"`
	Display   string  `json:"display"`
	Cost      float64 `json:"cost"`
	Cost1     float64 `json:"cost1"` // structural cost, newer engine builds
	Cost2     float64 `json:"cost2"` // mobile cost, newer engine builds
}

// GameConfig is the one-time configuration sent at game start
type GameConfig struct {
	Units []UnitInfo `json:"unitInformation"`

	raw      []byte
	bindings model.UnitBindings
	byKind   map[model.UnitKind]UnitInfo
}

// ParseConfig decodes the start-of-game payload and resolves unit bindings.
// The first six unit table entries are, in order: wall, generator, turret,
// fast attacker, area attacker, disruptor.
func ParseConfig(raw []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedConfig, err)
	}

	kinds := make(map[model.UnitRole]model.UnitKind, len(model.RoleOrder))
	for i, role := range model.RoleOrder {
		if i >= len(cfg.Units) {
			break
		}
		kinds[role] = model.UnitKind(cfg.Units[i].Shorthand)
	}
	bindings, err := model.NewUnitBindings(kinds)
	if err != nil {
		return nil, err
	}

	cfg.raw = append([]byte(nil), raw...)
	cfg.bindings = bindings
	cfg.byKind = make(map[model.UnitKind]UnitInfo, len(cfg.Units))
	for _, u := range cfg.Units {
		cfg.byKind[model.UnitKind(u.Shorthand)] = u
	}
	return &cfg, nil
}

// Bindings returns the role -> kind mapping resolved at parse time
func (c *GameConfig) Bindings() model.UnitBindings {
	return c.bindings
}

// Cost returns what one unit of kind costs from its own pool
func (c *GameConfig) Cost(kind model.UnitKind) float64 {
	info, ok := c.byKind[kind]
	if !ok {
		return 0
	}
	if info.Cost > 0 {
		return info.Cost
	}
	if c.bindings.IsStationary(kind) {
		return info.Cost1
	}
	return info.Cost2
}

// Pool returns the currency kind is paid from
func (c *GameConfig) Pool(kind model.UnitKind) model.Resource {
	if c.bindings.IsStationary(kind) {
		return model.ResourceStructural
	}
	return model.ResourceMobile
}

// Digest is a BLAKE2b-256 fingerprint of the raw config payload, used to
// tell apart games played under different rule sets
func (c *GameConfig) Digest() string {
	sum := blake2b.Sum256(c.raw)
	return hex.EncodeToString(sum[:])
}
