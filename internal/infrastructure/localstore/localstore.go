// Package localstore implementa el almacén local durable: un archivo JSON por
// colección bajo un directorio de datos. Varias instancias del proceso pueden
// compartir el directorio (el equivalente a varias pestañas sobre el mismo
// localStorage); la escritura es atómica vía archivo temporal + rename, de
// modo que un lector concurrente ve siempre la versión anterior o la nueva,
// nunca una mezcla.
//
// Contrato de fallos: la persistencia nunca tumba una mutación. Load degrada
// al fallback ante archivo ausente o corrupto; Save reporta el error para que
// el caller lo registre y siga con el estado en memoria.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// Claves de colección, una por entidad. Coinciden con las claves del
// datastore original para que un volcado sea legible lado a lado.
const (
	KeyUsers        = "users"
	KeyCompanies    = "companies"
	KeyVehicles     = "vehicles"
	KeyProducts     = "products"
	KeyOrders       = "orders"
	KeyTransactions = "transactions"
	KeyCities       = "cities"
	KeyAlerts       = "systemAlerts"
	KeyActivities   = "activities"
)

// Store adaptador clave-valor sobre el directorio de datos.
type Store struct {
	dir string
	log *logger.Logger
}

// New prepara el directorio de datos y construye el adaptador.
func New(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir devuelve el directorio de datos (lo observa el watcher de archivos).
func (s *Store) Dir() string { return s.dir }

// FileFor devuelve el nombre de archivo que respalda una clave.
func FileFor(key string) string { return key + ".json" }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, FileFor(key))
}

// Load lee y deserializa una colección. Ante clave ausente o JSON corrupto
// devuelve fallback sin error: la sesión arranca con lo mejor disponible.
func Load[T any](s *Store, key string, fallback T) T {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("key", key).Msg("lectura del almacén local falló; usando fallback")
		}
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("valor corrupto en el almacén local; usando fallback")
		return fallback
	}
	return out
}

// Save serializa y escribe una colección de forma atómica. El error se
// devuelve para diagnóstico; los callers continúan con el estado en memoria.
func Save[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("archivo temporal para %s: %w", key, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal de %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publicar %s: %w", key, err)
	}
	return nil
}
