package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/assistant/pkg/config"
	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/logging"
	"github.com/entrhq/assistant/pkg/notes"
	"github.com/entrhq/assistant/pkg/store"
)

// Stores holds the open contact directory and notebook.
type Stores struct {
	Contacts *contacts.Directory
	Notes    *notes.Notebook
	db       *sql.DB
}

// Close releases the database, if any.
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStores builds the persisters for the configured backend and loads both
// stores. Every persister retries failed saves.
func openStores(cfg *config.Config, logger *logging.Logger) (*Stores, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	var (
		contactsP store.Persister[*contacts.Contact]
		notesP    store.Persister[*notes.Note]
		db        *sql.DB
		err       error
	)

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		path := cfg.DatabasePath()
		db, err = store.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		contactsP = store.NewSQLite[*contacts.Contact](db, "contacts", path)
		notesP = store.NewSQLite[*notes.Note](db, "notes", path)

	case config.BackendYAML:
		contactsP = store.NewYAMLFile[*contacts.Contact](yamlName(cfg.ContactsPath()))
		notesP = store.NewYAMLFile[*notes.Note](yamlName(cfg.NotesPath()))

	default:
		if contactsP, err = store.NewJSONFile[*contacts.Contact](cfg.ContactsPath(), store.WithSchema(contacts.Schema)); err != nil {
			return nil, err
		}
		if notesP, err = store.NewJSONFile[*notes.Note](cfg.NotesPath(), store.WithSchema(notes.Schema)); err != nil {
			return nil, err
		}
	}

	retries, interval := cfg.Storage.SaveRetries, cfg.Storage.RetryInterval
	contactsP = store.NewRetrying(contactsP, retries, interval, store.WithRetryLogger(logger))
	notesP = store.NewRetrying(notesP, retries, interval, store.WithRetryLogger(logger))

	book, err := contacts.Open(contactsP, contacts.WithLogger(logger))
	if err != nil {
		closeDB(db)
		return nil, err
	}
	nb, err := notes.Open(notesP, store.WithLogger(logger))
	if err != nil {
		closeDB(db)
		return nil, err
	}

	logger.Infof("loaded %d contact(s) from %s and %d note(s) from %s",
		book.Len(), book.Target(), nb.Count(), nb.Target())
	return &Stores{Contacts: book, Notes: nb, db: db}, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

// yamlName swaps a .json extension for .yaml so the default file names
// follow the backend.
func yamlName(path string) string {
	if ext := filepath.Ext(path); ext == ".json" {
		return path[:len(path)-len(ext)] + ".yaml"
	}
	return path
}
