package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// Catalog holds the static crop, animal, product and quest definitions.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	crops    []Crop
	animals  []Animal
	products []Product
	quests   []Quest

	cropsByID    map[string]Crop
	animalsByID  map[string]Animal
	productsByID map[string]Product
	questsByID   map[string]Quest
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := build(defaultDocument())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid defaults: %v", err))
	}
	return c
}

// Load reads a YAML override file on top of the defaults.
// Entries replace the default with the same id; unknown ids are appended.
// A missing file yields the defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var override Document
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc := defaultDocument()
	doc.Crops = mergeByID(doc.Crops, override.Crops, func(c Crop) string { return c.ID })
	doc.Animals = mergeByID(doc.Animals, override.Animals, func(a Animal) string { return a.ID })
	doc.Products = mergeByID(doc.Products, override.Products, func(p Product) string { return p.ID })
	doc.Quests = mergeByID(doc.Quests, override.Quests, func(q Quest) string { return q.ID })

	c, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

func mergeByID[T any](base, override []T, id func(T) string) []T {
	out := append([]T(nil), base...)
	index := make(map[string]int, len(out))
	for i, v := range out {
		index[id(v)] = i
	}
	for _, v := range override {
		if i, ok := index[id(v)]; ok {
			out[i] = v
			continue
		}
		index[id(v)] = len(out)
		out = append(out, v)
	}
	return out
}

var titleCaser = cases.Title(language.English)

func displayName(name, id string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

func build(doc Document) (*Catalog, error) {
	c := &Catalog{
		cropsByID:    make(map[string]Crop, len(doc.Crops)),
		animalsByID:  make(map[string]Animal, len(doc.Animals)),
		productsByID: make(map[string]Product, len(doc.Products)),
		questsByID:   make(map[string]Quest, len(doc.Quests)),
	}

	for _, p := range doc.Products {
		if p.ID == "" {
			return nil, errors.New("product without id")
		}
		if p.SellPrice < 0 || p.XPReward < 0 {
			return nil, fmt.Errorf("product %s: negative price or reward", p.ID)
		}
		p.Name = displayName(p.Name, p.ID)
		c.products = append(c.products, p)
		c.productsByID[p.ID] = p
	}

	chainIDs := make(map[uint8]string, len(doc.Crops))
	for _, cr := range doc.Crops {
		if cr.ID == "" {
			return nil, errors.New("crop without id")
		}
		if cr.GrowTime <= 0 {
			return nil, fmt.Errorf("crop %s: grow_time must be positive", cr.ID)
		}
		if cr.BuyPrice < 0 || cr.SellPrice < 0 || cr.XPReward < 0 {
			return nil, fmt.Errorf("crop %s: negative price or reward", cr.ID)
		}
		if cr.ChainID != 0 {
			if other, dup := chainIDs[cr.ChainID]; dup {
				return nil, fmt.Errorf("crop %s: chain_id %d already used by %s", cr.ID, cr.ChainID, other)
			}
			chainIDs[cr.ChainID] = cr.ID
		}
		cr.Name = displayName(cr.Name, cr.ID)
		cr.GrowTimeMs = cr.GrowTime.Milliseconds()
		c.crops = append(c.crops, cr)
		c.cropsByID[cr.ID] = cr
	}

	for _, a := range doc.Animals {
		if a.ID == "" {
			return nil, errors.New("animal without id")
		}
		if a.ProduceTime <= 0 {
			return nil, fmt.Errorf("animal %s: produce_time must be positive", a.ID)
		}
		if a.BuyPrice < 0 {
			return nil, fmt.Errorf("animal %s: negative price", a.ID)
		}
		if _, ok := c.productsByID[a.ProduceID]; !ok {
			return nil, fmt.Errorf("animal %s: unknown produce %q", a.ID, a.ProduceID)
		}
		a.Name = displayName(a.Name, a.ID)
		a.ProduceTimeMs = a.ProduceTime.Milliseconds()
		c.animals = append(c.animals, a)
		c.animalsByID[a.ID] = a
	}

	for _, q := range doc.Quests {
		if q.ID == "" {
			return nil, errors.New("quest without id")
		}
		switch q.StatKey {
		case domain.StatPlanted, domain.StatHarvested, domain.StatEggsCollected, domain.StatMilkCollected:
		default:
			return nil, fmt.Errorf("quest %s: unknown stat_key %q", q.ID, q.StatKey)
		}
		if q.Target <= 0 || q.Reward < 0 {
			return nil, fmt.Errorf("quest %s: target must be positive and reward non-negative", q.ID)
		}
		q.Label = displayName(q.Label, q.ID)
		c.quests = append(c.quests, q)
		c.questsByID[q.ID] = q
	}

	return c, nil
}

// Crop returns the crop with the given id
func (c *Catalog) Crop(id string) (Crop, bool) {
	cr, ok := c.cropsByID[id]
	return cr, ok
}

// Animal returns the animal with the given id
func (c *Catalog) Animal(id string) (Animal, bool) {
	a, ok := c.animalsByID[id]
	return a, ok
}

// Product returns the product with the given id
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.productsByID[id]
	return p, ok
}

// Quest returns the quest with the given id
func (c *Catalog) Quest(id string) (Quest, bool) {
	q, ok := c.questsByID[id]
	return q, ok
}

// CropByChainID returns the crop registered under a game contract id
func (c *Catalog) CropByChainID(chainID uint8) (Crop, bool) {
	for _, cr := range c.crops {
		if cr.ChainID == chainID && chainID != 0 {
			return cr, true
		}
	}
	return Crop{}, false
}

// Crops returns crops in catalog order
func (c *Catalog) Crops() []Crop { return append([]Crop(nil), c.crops...) }

// Animals returns animals in catalog order
func (c *Catalog) Animals() []Animal { return append([]Animal(nil), c.animals...) }

// Products returns products in catalog order
func (c *Catalog) Products() []Product { return append([]Product(nil), c.products...) }

// Quests returns quests in catalog order
func (c *Catalog) Quests() []Quest { return append([]Quest(nil), c.quests...) }

// Document returns the full catalog in file shape
func (c *Catalog) Document() Document {
	return Document{
		Crops:    c.Crops(),
		Animals:  c.Animals(),
		Products: c.Products(),
		Quests:   c.Quests(),
	}
}
