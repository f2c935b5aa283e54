package bench

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sizes := []int{100, 250}
	require.NoError(t, WriteDatasets(dir, 3, sizes))

	meta, err := ReadMetadata(dir)
	require.NoError(t, err)
	require.Equal(t, int64(3), meta.Seed)
	require.Equal(t, sizes, meta.Sizes)

	for _, size := range sizes {
		random, err := ReadDataset(datasetFilename(dir, "random", size))
		require.NoError(t, err)
		require.Equal(t, DatasetGenerator{Seed: 3, Size: size}.Random(), random)

		sequential, err := ReadDataset(datasetFilename(dir, "sequential", size))
		require.NoError(t, err)
		require.Equal(t, DatasetGenerator{Size: size}.Sequential(), sequential)
	}
}

func TestReadDatasetMissing(t *testing.T) {
	_, err := ReadDataset(filepath.Join(t.TempDir(), "random_10.json"))
	require.Error(t, err)
}
