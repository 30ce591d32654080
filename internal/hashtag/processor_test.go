package hashtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lensfeed-post-service/internal/hashtag"
)

func TestFromCaption(t *testing.T) {
	tests := []struct {
		name        string
		caption     string
		wantTags    []string
		wantStorage string
		wantDisplay string
	}{
		{
			name:        "caption with two tags",
			caption:     "sunset at the #beach #bonfire tonight",
			wantTags:    []string{"beach", "bonfire"},
			wantStorage: "beach bonfire",
			wantDisplay: "#beach #bonfire",
		},
		{
			name:        "no hashtags",
			caption:     "just a plain caption",
			wantTags:    []string{},
			wantStorage: "",
			wantDisplay: "",
		},
		{
			name:        "empty caption",
			caption:     "",
			wantTags:    []string{},
			wantStorage: "",
			wantDisplay: "",
		},
		{
			name:        "leading hashtag",
			caption:     "#sunrise over the bay",
			wantTags:    []string{"sunrise"},
			wantStorage: "sunrise",
			wantDisplay: "#sunrise",
		},
		{
			name:        "whitespace-only segment dropped",
			caption:     "look # at #this",
			wantTags:    []string{"this"},
			wantStorage: "this",
			wantDisplay: "#this",
		},
		{
			name:        "trailing empty segment dropped",
			caption:     "ends with #",
			wantTags:    []string{},
			wantStorage: "",
			wantDisplay: "",
		},
		{
			name:        "duplicates are preserved",
			caption:     "#fun times #fun",
			wantTags:    []string{"fun", "fun"},
			wantStorage: "fun fun",
			wantDisplay: "#fun #fun",
		},
		{
			name:        "adjacent hashtags",
			caption:     "vibes #beach#bonfire",
			wantTags:    []string{"beach", "bonfire"},
			wantStorage: "beach bonfire",
			wantDisplay: "#beach #bonfire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hashtag.FromCaption(tt.caption)
			assert.Equal(t, tt.wantTags, got.Tags)
			assert.Equal(t, tt.wantStorage, got.StorageForm)
			assert.Equal(t, tt.wantDisplay, got.DisplayForm)
		})
	}
}

func TestFromCaption_IdempotentOnDisplayForm(t *testing.T) {
	captions := []string{
		"sunset at the #beach #bonfire tonight",
		"#one #two #three",
		"no tags here",
	}

	for _, caption := range captions {
		first := hashtag.FromCaption(caption)
		second := hashtag.FromCaption(first.DisplayForm)
		assert.Equal(t, first.Tags, second.Tags)
		assert.Equal(t, first.StorageForm, second.StorageForm)
		assert.Equal(t, first.DisplayForm, second.DisplayForm)
	}
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTags    []string
		wantStorage string
		wantDisplay string
	}{
		{
			name:        "hash-delimited tokens",
			raw:         "#beach#bonfire",
			wantTags:    []string{"beach", "bonfire"},
			wantStorage: "beach bonfire",
			wantDisplay: "#beach #bonfire",
		},
		{
			name:        "leading bare token is a tag",
			raw:         "beach#bonfire",
			wantTags:    []string{"beach", "bonfire"},
			wantStorage: "beach bonfire",
			wantDisplay: "#beach #bonfire",
		},
		{
			name:        "empty tokens discarded",
			raw:         "##beach##",
			wantTags:    []string{"beach"},
			wantStorage: "beach",
			wantDisplay: "#beach",
		},
		{
			name:        "empty query",
			raw:         "",
			wantTags:    []string{},
			wantStorage: "",
			wantDisplay: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hashtag.FromQuery(tt.raw)
			assert.Equal(t, tt.wantTags, got.Tags)
			assert.Equal(t, tt.wantStorage, got.StorageForm)
			assert.Equal(t, tt.wantDisplay, got.DisplayForm)
		})
	}
}
