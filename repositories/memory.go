// In-memory reference implementations of the repository interfaces.
//
// Every collection is an id-keyed map guarded by an RWMutex, with its own
// counter seeded at 1. Counters only ever grow: a deleted id is never
// handed out again. Values are copied on the way in and out of the maps,
// so callers never alias stored state. Referential integrity between
// collections is not enforced; read-time joins tolerate dangling foreign
// keys instead.

package repositories

import "github.com/Dosada05/scouting-system/models"

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDoc(d models.Document) models.Document {
	if d == nil {
		return nil
	}
	return append(models.Document(nil), d...)
}

// applyOptional merges a single patch field into the stored field.
func applyOptional[T any](dst **T, o models.Optional[T]) {
	if !o.Set {
		return
	}
	*dst = clonePtr(o.Value)
}
