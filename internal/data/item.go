package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemTemplate holds the static item fields the protocol core needs for
// notices and trade/shop listings. The full item database (sprites, effects)
// belongs to the asset layer.
type ItemTemplate struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Weight    int    `yaml:"weight"`
	Equipment bool   `yaml:"equipment"`
}

type itemListFile struct {
	Items []ItemTemplate `yaml:"items"`
}

// ItemTable is a read-only id index over item templates.
type ItemTable struct {
	items map[int]*ItemTemplate
}

func LoadItemTable(path string) (*ItemTable, error) {
	t := &ItemTable{items: make(map[int]*ItemTemplate)}
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item list: %w", err)
	}
	var f itemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse item list: %w", err)
	}
	for i := range f.Items {
		it := &f.Items[i]
		t.items[it.ID] = it
	}
	return t, nil
}

// Get returns the template for an id, or nil.
func (t *ItemTable) Get(id int) *ItemTemplate { return t.items[id] }

// Name returns the item name, or a placeholder for ids missing from the
// database so notices stay readable.
func (t *ItemTable) Name(id int) string {
	if it := t.items[id]; it != nil {
		return it.Name
	}
	return fmt.Sprintf("item #%d", id)
}

func (t *ItemTable) Count() int { return len(t.items) }
