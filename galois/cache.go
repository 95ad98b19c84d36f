package galois

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kshedden/gonpy"
	"github.com/sbinet/npyio"
)

// Table persistence, grounded on the teacher's server/infectious/tables.go:
// GentableNPIO writes the exp/log tables it just built with npyio.Write,
// and init() loads them back with two concurrent asynchreadernew calls
// fanned in over a channel. SaveTables/LoadCachedTables generalize that
// same write-once/read-concurrently shape from a fixed GF(2^16)/GF(2^32)
// pair of files to an arbitrary (p, k)-keyed cache directory.

// SaveTables persists f's discrete-log tables under dir, named by f's
// characteristic and degree so a directory can hold caches for
// several fields at once.
func SaveTables(f *Field, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("galois: creating cache directory %s: %w", dir, err)
	}

	logToPoly := make([]uint32, f.q-1)
	for i := range logToPoly {
		logToPoly[i] = uint32(f.logToPoly[i])
	}
	polyToLog := make([]uint32, len(f.polyToLog))
	copy(polyToLog, f.polyToLog)

	if err := writeNpy(logTablePath(dir, f.p, f.k), logToPoly); err != nil {
		return err
	}
	return writeNpy(antilogTablePath(dir, f.p, f.k), polyToLog)
}

// LoadCachedTables reconstructs the field 𝔽_{p^k} from tables
// previously written by SaveTables for the same (p, k), skipping the
// O(q) generator walk NewField performs to build them from scratch.
// It does not re-derive g from the cache; the caller is asserting that
// whatever generator produced the cached tables is the one it wants.
func LoadCachedTables(p, k uint32, dir string) (*Field, error) {
	logPath := logTablePath(dir, p, k)
	antilogPath := antilogTablePath(dir, p, k)

	type loaded struct {
		path string
		data []uint32
		err  error
	}
	ch := make(chan loaded, 2)
	go func() {
		data, err := readNpy(logPath)
		ch <- loaded{logPath, data, err}
	}()
	go func() {
		data, err := readNpy(antilogPath)
		ch <- loaded{antilogPath, data, err}
	}()

	results := make(map[string][]uint32, 2)
	for i := 0; i < 2; i++ {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		results[r.path] = r.data
	}
	logToPoly := results[logPath]
	polyToLog := results[antilogPath]

	q, overflow := binPow(p, k)
	if overflow || uint32(len(logToPoly)) != q-1 {
		return nil, fmt.Errorf("galois: cached table %s has %d entries, want %d for p=%d k=%d", logPath, len(logToPoly), q-1, p, k)
	}

	f := &Field{p: p, k: k, q: q, binary: p == 2}
	if !f.binary {
		f.slotWidth = slotWidthFor(p)
		f.slotMask = (1 << f.slotWidth) - 1
		rawSize := uint32(1) << (k * f.slotWidth)
		f.normalise = make([]Element, rawSize)
		for v := uint32(0); v < rawSize; v++ {
			if canonical, ok := f.canonicalizeRaw(v); ok {
				f.normalise[v] = canonical
			}
		}
	}

	f.logToPoly = make([]Element, 2*(q-1))
	for i, v := range logToPoly {
		f.logToPoly[i] = Element(v)
	}
	f.duplicateLogTable()

	f.polyToLog = make([]uint32, len(polyToLog))
	copy(f.polyToLog, polyToLog)

	f.collectElements()
	return f, nil
}

func logTablePath(dir string, p, k uint32) string {
	return filepath.Join(dir, fmt.Sprintf("log_to_poly_%d_%d.npy", p, k))
}

func antilogTablePath(dir string, p, k uint32) string {
	return filepath.Join(dir, fmt.Sprintf("poly_to_log_%d_%d.npy", p, k))
}

func writeNpy(path string, data []uint32) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("galois: creating %s: %w", path, err)
	}
	defer file.Close()
	if err := npyio.Write(file, data); err != nil {
		return fmt.Errorf("galois: writing %s: %w", path, err)
	}
	return nil
}

func readNpy(path string) ([]uint32, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("galois: opening %s: %w", path, err)
	}
	data, err := r.GetUint32()
	if err != nil {
		return nil, fmt.Errorf("galois: reading %s: %w", path, err)
	}
	return data, nil
}
