package memstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// snapshot is the on-disk image of the complete dataset. The layout is an
// implementation detail of this package, not a compatibility contract.
// Sequence counters travel with the data so identifiers are never reused
// across restarts, even after deletes.
type snapshot struct {
	Products   []model.Product `json:"products"`
	Orders     []model.Order   `json:"orders"`
	ProductSeq int64           `json:"product_seq"`
	OrderSeq   int64           `json:"order_seq"`
}

func readSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// writeSnapshot replaces the snapshot file atomically: the new image goes to
// a temp file in the same directory, is synced, and is renamed over the old
// one. An interrupted write leaves the previous snapshot intact.
func writeSnapshot(path string, snap *snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
