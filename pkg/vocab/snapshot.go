package vocab

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

// The snapshot codec exists for the persistence collaborator: it turns the
// learned source into bytes and back so learned vocabulary survives
// restarts. The store itself never touches disk.

const snapshotVersion = 1

type snapshotTerm struct {
	Canonical  string   `msgpack:"t"`
	Variations []string `msgpack:"v,omitempty"`
	Weight     float64  `msgpack:"w"`
}

type snapshotEntry struct {
	CategoryKind uint8          `msgpack:"k"`
	CategoryName string         `msgpack:"c"`
	Terms        []snapshotTerm `msgpack:"ts"`
}

type snapshot struct {
	Version int             `msgpack:"ver"`
	Entries []snapshotEntry `msgpack:"e"`
}

// EncodeLearned serializes the store's learned source with msgpack.
func (s *Store) EncodeLearned() ([]byte, error) {
	learned := s.Learned()
	snap := snapshot{Version: snapshotVersion}
	for _, cat := range learnedCategories(learned) {
		entry := snapshotEntry{
			CategoryKind: uint8(cat.Kind),
			CategoryName: cat.Name,
		}
		for _, t := range learned.Terms[cat] {
			entry.Terms = append(entry.Terms, snapshotTerm{
				Canonical:  t.Canonical,
				Variations: t.Variations,
				Weight:     t.Weight,
			})
		}
		snap.Entries = append(snap.Entries, entry)
	}
	return msgpack.Marshal(snap)
}

// DecodeLearned parses bytes produced by EncodeLearned into a source
// suitable for WithLearned.
func DecodeLearned(data []byte) (Source, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Source{}, fmt.Errorf("decoding learned snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return Source{}, fmt.Errorf("unsupported learned snapshot version %d", snap.Version)
	}
	src := Source{
		Name:     "learned",
		Priority: PriorityLearned,
		Terms:    map[category.Category][]Term{},
	}
	for _, entry := range snap.Entries {
		cat := category.Category{Kind: category.Kind(entry.CategoryKind), Name: entry.CategoryName}
		for _, t := range entry.Terms {
			weight := t.Weight
			if weight <= 0 || weight > 1 {
				weight = WeightLearned
			}
			src.Terms[cat] = append(src.Terms[cat], Term{
				Canonical:  t.Canonical,
				Variations: t.Variations,
				Weight:     weight,
				Source:     src.Name,
			})
		}
	}
	return src, nil
}

func learnedCategories(src Source) []category.Category {
	out := make([]category.Category, 0, len(src.Terms))
	for cat := range src.Terms {
		out = append(out, cat)
	}
	// Stable snapshot bytes need stable category order.
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less(a, b category.Category) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Kind < b.Kind
}
