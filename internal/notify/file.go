package notify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// FileTransport observa el directorio de datos con fsnotify: la escritura de
// la colección de alertas por otro proceso aparece como evento. Publish es un
// no-op porque la escritura misma del adaptador ya es la señal; los eventos
// llegan sin source y nunca se filtran como eco, da igual: la reacción es
// idempotente.
type FileTransport struct {
	dir     string
	log     *logger.Logger
	watcher *fsnotify.Watcher
}

// NewFileTransport crea el transporte sobre el directorio del almacén local.
func NewFileTransport(dir string, log *logger.Logger) *FileTransport {
	return &FileTransport{dir: dir, log: log}
}

func (t *FileTransport) Start(ctx context.Context, deliver func(Event)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(t.dir); err != nil {
		watcher.Close()
		return err
	}
	t.watcher = watcher

	alertsFile := localstore.FileFor(localstore.KeyAlerts)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != alertsFile {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				deliver(Event{Key: localstore.KeyAlerts, EmittedAt: time.Now()})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				t.log.Warn().Err(err).Msg("watcher del directorio de datos reportó error")
			}
		}
	}()
	return nil
}

func (t *FileTransport) Publish(context.Context, Event) error { return nil }

func (t *FileTransport) Close() error {
	if t.watcher != nil {
		return t.watcher.Close()
	}
	return nil
}
