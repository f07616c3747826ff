package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/exif-renamer/api/apitype"
)

func TestMetaDataLoader_LoadMetaData(t *testing.T) {
	a := assert.New(t)

	var images []*apitype.ImageFile
	reader := &StubReader{metaData: map[string]apitype.MetaData{}}
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"} {
		image := apitype.NewImageFile("photos", name)
		images = append(images, image)
		if name != "c.jpg" {
			reader.metaData[image.Path()] = apitype.MetaData{apitype.ISOSpeedRatings: apitype.IntegerValue(100)}
		}
	}

	t.Run("No images", func(t *testing.T) {
		sut := NewMetaDataLoader(reader, 2)
		var statuses [][2]int
		results := sut.LoadMetaData(nil, func(current int, total int) {
			statuses = append(statuses, [2]int{current, total})
		})
		a.Empty(results)
		a.Equal([][2]int{{0, 0}}, statuses)
	})

	for _, threads := range []int{1, 3, 10} {
		sut := NewMetaDataLoader(reader, threads)
		var statuses []int
		results := sut.LoadMetaData(images, func(current int, total int) {
			a.Equal(5, total)
			statuses = append(statuses, current)
		})

		if a.Len(results, 5) {
			for i, result := range results {
				a.Equal(images[i], result.Image())
				_, found := result.MetaData()
				a.Equal(i != 2, found)
			}
		}
		a.Equal([]int{0, 1, 2, 3, 4, 5}, statuses)
	}
}

func TestNewMetaDataLoader_DefaultThreads(t *testing.T) {
	a := assert.New(t)

	sut := NewMetaDataLoader(&StubReader{}, 0)
	a.Greater(sut.threadCount, 0)
}
