package database

import (
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	cursorRepo contract.CursorStore
	runRepo    contract.RunRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

func (i *instance) repoInstances() {
	i.cursorRepo = newCursorRepo(i.db.conn)
	i.runRepo = newRunRepo(i.db.conn)
}

// Cursor returns the rotation cursor store
func (i *instance) Cursor() contract.CursorStore {
	return i.cursorRepo
}

// Run returns the run history repository
func (i *instance) Run() contract.RunRepo {
	return i.runRepo
}
