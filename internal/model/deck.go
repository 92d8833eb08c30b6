package model

import "image"

// SlidePicture places one image and its caption on a slide. Coordinates are
// in inches from the top-left corner of the page.
type SlidePicture struct {
	Sample   Sample
	Image    image.Image
	X        float64
	Y        float64
	Width    float64
	Height   float64
	CaptionY float64
}

// Slide is the exported page of one tag.
type Slide struct {
	Tag      Tag
	Header   string
	Pictures []SlidePicture
}
