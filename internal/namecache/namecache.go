// Package namecache maintains the secondary name index over store entities:
// exact-match lookups from entity name to ids, filtered by kind.
package namecache

import "github.com/signalsfoundry/simstore/model"

type entry struct {
	id   model.ObjectId
	kind model.ObjectType
}

// Cache indexes entity ids by their name field. It tracks the literal name,
// never the alias; display-name policy lives in the store's transaction
// layer.
type Cache struct {
	byName map[string][]entry
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{byName: make(map[string][]entry)}
}

// Add indexes id under name.
func (c *Cache) Add(name string, id model.ObjectId, kind model.ObjectType) {
	c.byName[name] = append(c.byName[name], entry{id: id, kind: kind})
}

// Remove drops id from the name's bucket. Unknown pairs are ignored.
func (c *Cache) Remove(name string, id model.ObjectId) {
	entries := c.byName[name]
	for i, e := range entries {
		if e.id == id {
			c.byName[name] = append(entries[:i], entries[i+1:]...)
			if len(c.byName[name]) == 0 {
				delete(c.byName, name)
			}
			return
		}
	}
}

// Rename moves id from the oldName bucket to the newName bucket.
func (c *Cache) Rename(newName, oldName string, id model.ObjectId) {
	entries := c.byName[oldName]
	for i, e := range entries {
		if e.id == id {
			c.byName[oldName] = append(entries[:i], entries[i+1:]...)
			if len(c.byName[oldName]) == 0 {
				delete(c.byName, oldName)
			}
			c.byName[newName] = append(c.byName[newName], e)
			return
		}
	}
}

// IDs returns the ids indexed under name whose kind is in mask, in insertion
// order.
func (c *Cache) IDs(name string, mask model.ObjectType) []model.ObjectId {
	var out []model.ObjectId
	for _, e := range c.byName[name] {
		if mask.Has(e.kind) {
			out = append(out, e.id)
		}
	}
	return out
}

// Clear drops every index entry.
func (c *Cache) Clear() {
	c.byName = make(map[string][]entry)
}
