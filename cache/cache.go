package cache

import (
	"encoding/json"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/jjmccollum/open-cbgm-go/bitset"
	"github.com/jjmccollum/open-cbgm-go/compare"
)

// Cache is a handle to one persisted collation run's BadgerDB store.
// Methods are safe for concurrent use by multiple goroutines (Badger
// transactions provide the necessary isolation); process-level exclusivity
// (only one driver touches the handle at a time) is the caller's
// responsibility, not this package's.
type Cache struct {
	db     *badger.DB
	closed bool
}

// Open opens (creating if absent) a BadgerDB store at dir. If the store has
// no run ID yet, a fresh one is stamped via google/uuid.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", dir, err)
	}
	c := &Cache{db: db}
	if _, ok, err := c.RunID(); err != nil {
		db.Close()
		return nil, err
	} else if !ok {
		if err := c.putRunID(uuid.New()); err != nil {
			db.Close()
			return nil, err
		}
	}
	return c, nil
}

// Close releases the underlying BadgerDB handle.
func (c *Cache) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("cache: close: %w", err)
	}
	return nil
}

func (c *Cache) guard() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

const (
	keyRunID           = "meta:run_id"
	prefixWitnessOrder = "witness:"
	prefixUnitMeta     = "unit:"
	prefixReadingOrder = "reading_order:"
	prefixRelation     = "relation:"
	prefixSupport      = "support:"
	prefixComparison   = "cmp:"
)

func (c *Cache) putJSON(key string, v interface{}) error {
	if err := c.guard(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON reports (false, nil) when key is absent, and an *ErrCorruption
// when present but malformed.
func (c *Cache) getJSON(key string, v interface{}) (bool, error) {
	if err := c.guard(); err != nil {
		return false, err
	}
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			if jsonErr := json.Unmarshal(data, v); jsonErr != nil {
				return &ErrCorruption{Key: key, Err: jsonErr}
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return false, fmt.Errorf("cache: read %q: %w", key, err)
	}
	return found, nil
}

func (c *Cache) putRunID(id uuid.UUID) error {
	return c.putJSON(keyRunID, RunInfo{ID: id})
}

// RunID returns the stamped run identifier, or (zero, false, nil) if none
// has been stamped yet.
func (c *Cache) RunID() (uuid.UUID, bool, error) {
	var info RunInfo
	ok, err := c.getJSON(keyRunID, &info)
	if err != nil || !ok {
		return uuid.UUID{}, ok, err
	}
	return info.ID, true, nil
}

// PutWitnessOrder persists the witnesses table: the declared witness IDs
// in apparatus order.
func (c *Cache) PutWitnessOrder(ids []string) error {
	return c.putJSON(prefixWitnessOrder+"order", ids)
}

// WitnessOrder returns the persisted witness order, or (nil, false, nil) if
// none has been stored.
func (c *Cache) WitnessOrder() ([]string, bool, error) {
	var ids []string
	ok, err := c.getJSON(prefixWitnessOrder+"order", &ids)
	return ids, ok, err
}

// PutUnitMeta persists one variation_units row.
func (c *Cache) PutUnitMeta(id, label string, connectivity, order int) error {
	return c.putJSON(prefixUnitMeta+id, unitMetaRecord{ID: id, Label: label, Connectivity: connectivity, Order: order})
}

// UnitMeta returns one persisted variation_units row.
func (c *Cache) UnitMeta(id string) (label string, connectivity, order int, ok bool, err error) {
	var rec unitMetaRecord
	ok, err = c.getJSON(prefixUnitMeta+id, &rec)
	if err != nil || !ok {
		return "", 0, 0, ok, err
	}
	return rec.Label, rec.Connectivity, rec.Order, true, nil
}

// PutReadingOrder persists the readings table for one unit: its surviving
// reading IDs in declaration order.
func (c *Cache) PutReadingOrder(unitID string, readingIDs []string) error {
	return c.putJSON(prefixReadingOrder+unitID, readingIDs)
}

// ReadingOrder returns one unit's persisted reading order.
func (c *Cache) ReadingOrder(unitID string) ([]string, bool, error) {
	var ids []string
	ok, err := c.getJSON(prefixReadingOrder+unitID, &ids)
	return ids, ok, err
}

// PutReadingRelations persists the reading_relations table for one unit:
// every local-stemma edge.
func (c *Cache) PutReadingRelations(unitID string, relations []ReadingRelation) error {
	return c.putJSON(prefixRelation+unitID, relations)
}

// ReadingRelations returns one unit's persisted local-stemma edges.
func (c *Cache) ReadingRelations(unitID string) ([]ReadingRelation, bool, error) {
	var relations []ReadingRelation
	ok, err := c.getJSON(prefixRelation+unitID, &relations)
	return relations, ok, err
}

// PutReadingSupport persists the reading_support table for one unit: the
// reading each witness attests there.
func (c *Cache) PutReadingSupport(unitID string, support map[string]string) error {
	return c.putJSON(prefixSupport+unitID, support)
}

// ReadingSupport returns one unit's persisted witness->reading support map.
func (c *Cache) ReadingSupport(unitID string) (map[string]string, bool, error) {
	var support map[string]string
	ok, err := c.getJSON(prefixSupport+unitID, &support)
	return support, ok, err
}

// PutComparison persists one genealogical_comparisons row.
func (c *Cache) PutComparison(cmp compare.Comparison) error {
	rec, err := toRecord(cmp)
	if err != nil {
		return fmt.Errorf("cache: encode comparison %q/%q: %w", cmp.Primary, cmp.Secondary, err)
	}
	return c.putJSON(comparisonKey(cmp.Primary, cmp.Secondary), rec)
}

// Comparison returns one persisted genealogical comparison.
func (c *Cache) Comparison(primary, secondary string) (compare.Comparison, bool, error) {
	var rec comparisonRecord
	key := comparisonKey(primary, secondary)
	ok, err := c.getJSON(key, &rec)
	if err != nil || !ok {
		return compare.Comparison{}, ok, err
	}
	cmp, err := fromRecord(rec)
	if err != nil {
		return compare.Comparison{}, false, &ErrCorruption{Key: key, Err: err}
	}
	return cmp, true, nil
}

func comparisonKey(primary, secondary string) string {
	return prefixComparison + primary + ":" + secondary
}

func toRecord(cmp compare.Comparison) (comparisonRecord, error) {
	blob := func(s bitset.Set) ([]byte, error) { return s.MarshalBinary() }

	agreements, err := blob(cmp.Agreements)
	if err != nil {
		return comparisonRecord{}, err
	}
	explained, err := blob(cmp.Explained)
	if err != nil {
		return comparisonRecord{}, err
	}
	extant, err := blob(cmp.Extant)
	if err != nil {
		return comparisonRecord{}, err
	}
	prior, err := blob(cmp.Prior)
	if err != nil {
		return comparisonRecord{}, err
	}
	posterior, err := blob(cmp.Posterior)
	if err != nil {
		return comparisonRecord{}, err
	}
	norel, err := blob(cmp.Norel)
	if err != nil {
		return comparisonRecord{}, err
	}
	unclear, err := blob(cmp.Unclear)
	if err != nil {
		return comparisonRecord{}, err
	}

	return comparisonRecord{
		Primary:    cmp.Primary,
		Secondary:  cmp.Secondary,
		Agreements: agreements,
		Explained:  explained,
		Extant:     extant,
		Prior:      prior,
		Posterior:  posterior,
		Norel:      norel,
		Unclear:    unclear,
		Cost:       cmp.Cost,
	}, nil
}

func fromRecord(rec comparisonRecord) (compare.Comparison, error) {
	unblob := func(data []byte) (bitset.Set, error) {
		var s bitset.Set
		if err := s.UnmarshalBinary(data); err != nil {
			return bitset.Set{}, err
		}
		return s, nil
	}

	agreements, err := unblob(rec.Agreements)
	if err != nil {
		return compare.Comparison{}, err
	}
	explained, err := unblob(rec.Explained)
	if err != nil {
		return compare.Comparison{}, err
	}
	extant, err := unblob(rec.Extant)
	if err != nil {
		return compare.Comparison{}, err
	}
	prior, err := unblob(rec.Prior)
	if err != nil {
		return compare.Comparison{}, err
	}
	posterior, err := unblob(rec.Posterior)
	if err != nil {
		return compare.Comparison{}, err
	}
	norel, err := unblob(rec.Norel)
	if err != nil {
		return compare.Comparison{}, err
	}
	unclear, err := unblob(rec.Unclear)
	if err != nil {
		return compare.Comparison{}, err
	}

	return compare.Comparison{
		Primary:    rec.Primary,
		Secondary:  rec.Secondary,
		Agreements: agreements,
		Explained:  explained,
		Extant:     extant,
		Prior:      prior,
		Posterior:  posterior,
		Norel:      norel,
		Unclear:    unclear,
		Cost:       rec.Cost,
	}, nil
}

// Witnesses lists every primary witness ID with at least one persisted
// comparison, sorted for determinism. Useful for a driver resuming a run
// without re-reading the original collation.
func (c *Cache) Witnesses() ([]string, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(prefixComparison)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key()[len(prefix):])
			for i := 0; i < len(key); i++ {
				if key[i] == ':' {
					seen[key[:i]] = struct{}{}
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache: scan witnesses: %w", err)
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
