package importer

import (
	"sync"

	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// idMapper asigna a cada UUID remoto un id local estable durante la sesión.
// Los ids viven en el rango alto reservado a importados, disjunto del
// asignador del store.
type idMapper struct {
	mu   sync.Mutex
	byID map[string]int64
	next int64
}

func newIDMapper() *idMapper {
	return &idMapper{
		byID: make(map[string]int64),
		next: store.ImportedIDBase,
	}
}

func (m *idMapper) localID(remoteID string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byID[remoteID]; ok {
		return id
	}
	id := m.next
	m.next++
	m.byID[remoteID] = id
	return id
}
