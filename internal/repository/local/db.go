package local

import (
	"sync"

	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
)

// DB bundles the shared store with the mutex that serializes mutations on it.
// Construct one per store and hand it to every repository.
type DB struct {
	kv *localkv.Store
	mu sync.Mutex
}

func NewDB(kv *localkv.Store) *DB {
	return &DB{kv: kv}
}

// counters holds the next id to assign per collection. Ids start at 1 and are
// bumped after assignment, so they are never reused even across deletes.
type counters struct {
	ResumeID  int64 `json:"resumeId"`
	JobID     int64 `json:"jobId"`
	HistoryID int64 `json:"historyId"`
}

func defaultCounters() counters {
	return counters{ResumeID: 1, JobID: 1, HistoryID: 1}
}

// nextID assigns the next id from the slot chosen by pick and persists the
// bumped record. Callers must hold db.mu.
func (db *DB) nextID(pick func(*counters) *int64) (int64, error) {
	c := localkv.Read(db.kv, keyCounters, defaultCounters())
	slot := pick(&c)
	id := *slot
	*slot = id + 1
	if err := localkv.Write(db.kv, keyCounters, c); err != nil {
		return 0, err
	}
	return id, nil
}
