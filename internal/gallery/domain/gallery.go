package domain

import (
	"errors"
	"slices"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image")

type Image struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	Likes    int    `json:"likes"`
}

func (i Image) Validate() error {
	if strings.TrimSpace(i.ImageURL) == "" {
		return errors.Join(ErrInvalidImage, errors.New("imageUrl is required"))
	}
	return nil
}

// Like adjusts the counter by one in the given direction; it never goes below zero.
func (i Image) Like(up bool) Image {
	if up {
		i.Likes++
	} else if i.Likes > 0 {
		i.Likes--
	}
	return i
}

// Likes records which images a user has liked.
type Likes struct {
	UserID   string   `json:"userId"`
	ImageIDs []string `json:"imageIds"`
}

func (l Likes) Has(imageID string) bool {
	return slices.Contains(l.ImageIDs, imageID)
}

// Toggle flips membership of imageID and reports whether it is now liked.
func (l Likes) Toggle(imageID string) (Likes, bool) {
	if i := slices.Index(l.ImageIDs, imageID); i >= 0 {
		l.ImageIDs = slices.Delete(slices.Clone(l.ImageIDs), i, i+1)
		return l, false
	}
	l.ImageIDs = append(slices.Clone(l.ImageIDs), imageID)
	return l, true
}
