package simplify

import (
	"encoding/gob"
	"os"

	"github.com/oisee/symexpr/pkg/expr"
)

func init() {
	gob.Register(expr.StringIdent(""))
	gob.Register(expr.IntIdent(0))
}

// Checkpoint captures enough state to resume a long-running batch
// simplification, grounded on the teacher's pkg/result.Checkpoint.
type Checkpoint struct {
	Completed int
	Results   []BatchResult
}

// SaveCheckpoint writes ckpt to path via gob.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads a Checkpoint previously written by SaveCheckpoint.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
