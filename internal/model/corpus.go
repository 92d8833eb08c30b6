// Package model defines the data structures shared by the scanner, the grid
// materializer and the exporters.
package model

// Path represents a file system path.
type Path string

// Sample is the base name of a directory holding one comparison subject.
type Sample string

// Tag is a case-folded image file name shared across samples.
type Tag string

// CorpusIndex maps every tag to the samples that provide an image for it.
//
// Samples keeps discovery order and lists every sample directory found, even
// those that contribute no image. Tags is sorted lexically and only contains
// names backed by at least one file.
type CorpusIndex struct {
	Root    Path
	Samples []Sample
	Tags    []Tag
	Refs    map[Tag]map[Sample]Path
}

// Lookup returns the image path recorded for the (tag, sample) pair.
func (c CorpusIndex) Lookup(tag Tag, sample Sample) (Path, bool) {
	bySample, ok := c.Refs[tag]
	if !ok {
		return "", false
	}

	path, ok := bySample[sample]

	return path, ok
}

// PresentCount returns how many samples provide an image for tag.
func (c CorpusIndex) PresentCount(tag Tag) int {
	count := 0

	for _, sample := range c.Samples {
		if _, ok := c.Lookup(tag, sample); ok {
			count++
		}
	}

	return count
}

// Empty reports whether the index holds no tags.
func (c CorpusIndex) Empty() bool {
	return len(c.Tags) == 0
}

// Corpus is the terminal result of one scan-and-load pass. It is not mutated
// once handed out; a new scan produces a new Corpus.
type Corpus struct {
	Index  CorpusIndex
	Layout Layout
	Blocks []TagBlock
}

// Progress reports that the images of Tag, the Current-th of Total tags, are
// fully decoded.
type Progress struct {
	Current int
	Total   int
	Tag     Tag
}

// Percent returns the completed fraction in the [0, 1] range.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}

	return float64(p.Current) / float64(p.Total)
}
