package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocalID_MarksOptimistic(t *testing.T) {
	req := require.New(t)

	first := NewLocalID()
	second := NewLocalID()

	req.True(strings.HasPrefix(first, LocalIDPrefix))
	req.NotEqual(first, second)
	req.True(Message{ID: first}.IsOptimistic())
	req.False(Message{ID: "srv-1"}.IsOptimistic())
}

func TestMessage_PhotoContent(t *testing.T) {
	tests := []struct {
		description string
		message     Message
		want        PhotoPayload
		wantOk      bool
	}{
		{
			description: "Turn response with photo payload",
			message:     Message{Kind: KindTurnResponse, Content: `{"image_url":"https://cdn/p.jpg","caption":"us"}`},
			want:        PhotoPayload{ImageURL: "https://cdn/p.jpg", Caption: "us"},
			wantOk:      true,
		},
		{
			description: "Image message with payload",
			message:     Message{Kind: KindImage, Content: `{"image_url":"https://cdn/p.jpg"}`},
			want:        PhotoPayload{ImageURL: "https://cdn/p.jpg"},
			wantOk:      true,
		},
		{
			description: "Plain-text turn response falls back",
			message:     Message{Kind: KindTurnResponse, Content: "my answer"},
		},
		{
			description: "Valid JSON without an image url falls back",
			message:     Message{Kind: KindTurnResponse, Content: `{"caption":"no picture"}`},
		},
		{
			description: "Chat content that happens to be JSON is never a photo",
			message:     Message{Kind: KindChat, Content: `{"image_url":"https://cdn/p.jpg"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			got, ok := tt.message.PhotoContent()
			req.Equal(tt.wantOk, ok)
			req.Equal(tt.want, got)
		})
	}
}
