package posterize_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/clusterkit/posterize"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoColourImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, color.RGBA{R: 230, G: 20, B: 20, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 20, G: 20, B: 230, A: 255})
			}
		}
	}
	return img
}

func TestPosterizeKMeansProducesTwoColours(t *testing.T) {
	out, err := posterize.Posterize(twoColourImage(), posterize.Options{
		Method:       posterize.MethodKMeans,
		ClusterCount: 2,
		Source:       rng.FromSeed(3),
	})
	require.NoError(t, err)

	bounds := out.Bounds()
	assert.Equal(t, 4, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	seen := map[color.RGBA]bool{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := out.At(x, y).RGBA()
			seen[color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}] = true
		}
	}
	assert.LessOrEqual(t, len(seen), 2)
}

func TestPosterizeGMMDoesNotError(t *testing.T) {
	out, err := posterize.Posterize(twoColourImage(), posterize.Options{
		Method:       posterize.MethodGMM,
		ClusterCount: 2,
		Source:       rng.FromSeed(4),
		MaxIter:      50,
	})
	require.NoError(t, err)
	assert.Equal(t, twoColourImage().Bounds(), out.Bounds())
}

func TestPosterizeAgglomerativeSingleLinkage(t *testing.T) {
	out, err := posterize.Posterize(twoColourImage(), posterize.Options{
		Method:       posterize.MethodAgglomerativeSingleLinkage,
		ClusterCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, twoColourImage().Bounds(), out.Bounds())
}

func TestPosterizeRejectsNonPositiveClusterCount(t *testing.T) {
	_, err := posterize.Posterize(twoColourImage(), posterize.Options{ClusterCount: 0})
	assert.Error(t, err)
}

func TestPosterizeRejectsUnknownMethod(t *testing.T) {
	_, err := posterize.Posterize(twoColourImage(), posterize.Options{Method: posterize.Method(99), ClusterCount: 2})
	assert.Error(t, err)
}
