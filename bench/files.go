package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DatasetMetadata describes a generated dataset directory.
type DatasetMetadata struct {
	Seed            int64  `json:"seed"`
	Sizes           []int  `json:"sizes"`
	Description     string `json:"description"`
	RandomRange     string `json:"random_range"`
	SequentialRange string `json:"sequential_range"`
}

func datasetFilename(dir, pattern string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.json", pattern, size))
}

// WriteDatasets generates and persists the random and sequential
// keysets for every size, plus a metadata.json describing them.
func WriteDatasets(dir string, seed int64, sizes []int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, size := range sizes {
		gen := DatasetGenerator{Seed: seed, Size: size}
		if err := WriteDataset(datasetFilename(dir, "random", size), gen.Random()); err != nil {
			return err
		}
		if err := WriteDataset(datasetFilename(dir, "sequential", size), gen.Sequential()); err != nil {
			return err
		}
	}

	meta := DatasetMetadata{
		Seed:            seed,
		Sizes:           sizes,
		Description:     "Test datasets for AVL, red-black, and splay tree benchmarking",
		RandomRange:     "Random samples from [0, size*10)",
		SequentialRange: "Sequential integers from 0 to size-1",
	}
	bz, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "metadata.json"), bz, 0o644)
}

// WriteDataset persists one keyset as a JSON array.
func WriteDataset(path string, keys []int64) error {
	bz, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}

// ReadDataset loads a keyset written by WriteDataset.
func ReadDataset(path string) ([]int64, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var keys []int64
	if err := json.Unmarshal(bz, &keys); err != nil {
		return nil, fmt.Errorf("error unmarshaling dataset %s: %w", path, err)
	}
	return keys, nil
}

// ReadMetadata loads the metadata.json of a dataset directory.
func ReadMetadata(dir string) (DatasetMetadata, error) {
	var meta DatasetMetadata
	bz, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(bz, &meta); err != nil {
		return meta, fmt.Errorf("error unmarshaling dataset metadata: %w", err)
	}
	return meta, nil
}
