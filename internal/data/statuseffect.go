package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StatusEffect describes one server-driven effect overlay and the notices
// shown when it starts or ends.
type StatusEffect struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	MessageOn  string `yaml:"message_on"`
	MessageOff string `yaml:"message_off"`
}

// optionEntry binds a wire option value or bit to an effect id.
type optionEntry struct {
	Value    uint16 `yaml:"value"`
	EffectID int    `yaml:"effect_id"`
}

type statusEffectFile struct {
	Effects []StatusEffect `yaml:"effects"`
	// Athena carries effects in four option words: opt1 matches by exact
	// value (stun mode), the others by bit.
	Opt0 []optionEntry `yaml:"opt0"`
	Opt1 []optionEntry `yaml:"opt1"`
	Opt2 []optionEntry `yaml:"opt2"`
	Opt3 []optionEntry `yaml:"opt3"`
}

// StatusEffectTable maps wire option fields to effect ids. Consulted by
// dialect handlers, never mutated after load.
type StatusEffectTable struct {
	effects map[int]*StatusEffect
	opt0    map[uint16]int
	opt1    map[uint16]int
	opt2    map[uint16]int
	opt3    map[uint16]int
}

// LoadStatusEffectTable loads the table from a YAML file. An empty path
// yields an empty table: effects then pass through with no notices.
func LoadStatusEffectTable(path string) (*StatusEffectTable, error) {
	t := emptyStatusEffectTable()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read status effects: %w", err)
	}
	var f statusEffectFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse status effects: %w", err)
	}
	for i := range f.Effects {
		e := &f.Effects[i]
		t.effects[e.ID] = e
	}
	for _, o := range f.Opt0 {
		t.opt0[o.Value] = o.EffectID
	}
	for _, o := range f.Opt1 {
		t.opt1[o.Value] = o.EffectID
	}
	for _, o := range f.Opt2 {
		t.opt2[o.Value] = o.EffectID
	}
	for _, o := range f.Opt3 {
		t.opt3[o.Value] = o.EffectID
	}
	return t, nil
}

func emptyStatusEffectTable() *StatusEffectTable {
	return &StatusEffectTable{
		effects: make(map[int]*StatusEffect),
		opt0:    make(map[uint16]int),
		opt1:    make(map[uint16]int),
		opt2:    make(map[uint16]int),
		opt3:    make(map[uint16]int),
	}
}

// Get returns the effect for an id, or nil.
func (t *StatusEffectTable) Get(id int) *StatusEffect {
	return t.effects[id]
}

// Opt0Bits, Opt2Bits and Opt3Bits map by bit test; Opt1Values matches the
// whole field (one stun mode at a time).
func (t *StatusEffectTable) Opt0Bits() map[uint16]int   { return t.opt0 }
func (t *StatusEffectTable) Opt1Values() map[uint16]int { return t.opt1 }
func (t *StatusEffectTable) Opt2Bits() map[uint16]int   { return t.opt2 }
func (t *StatusEffectTable) Opt3Bits() map[uint16]int   { return t.opt3 }

func (t *StatusEffectTable) Count() int { return len(t.effects) }
