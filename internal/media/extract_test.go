package media

import (
	"context"
	"errors"
	"testing"

	"github.com/orgball2608/fb-post-importer/internal/domain"
	mock_facebook "github.com/orgball2608/fb-post-importer/internal/facebook/mocks"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func photo(url, src string) domain.Attachment {
	a := domain.Attachment{MediaType: domain.MediaTypePhoto, URL: url}
	if src != "" {
		a.Media = &domain.Media{Image: &domain.Image{Src: src}}
	}
	return a
}

func list(items ...domain.Attachment) *domain.AttachmentList {
	return &domain.AttachmentList{Data: items}
}

func TestCandidatesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_facebook.NewMockClient(ctrl)

	post := domain.Post{
		ID:          "1_1",
		FullPicture: "full",
		Attachments: list(
			photo("p1-url", "p1-src"),
			domain.Attachment{
				MediaType:      domain.MediaTypeAlbum,
				URL:            "album-url",
				Subattachments: list(photo("s1-url", "s1-src"), domain.Attachment{MediaType: "video", URL: "video-url"}),
			},
			domain.Attachment{MediaType: "share", URL: "share-url", Subattachments: list(photo("", "s2-src"))},
		),
	}

	fetcher.EXPECT().GetPostAttachments(gomock.Any(), "1_1").Return([]domain.Attachment{
		photo("extra-url", ""),
		{MediaType: domain.MediaTypeAlbum, URL: "extra-album", Subattachments: list(photo("extra-sub", ""))},
	}, nil)

	got := NewExtractor(fetcher, logger.Nop()).Candidates(context.Background(), post)

	assert.Equal(t, []string{
		"full",
		"p1-url", "p1-src",
		"album-url", "s1-url", "s1-src",
		"s2-src",
		"extra-url",
		"extra-album", "extra-sub",
	}, got)
}

func TestCandidatesLookupFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_facebook.NewMockClient(ctrl)
	fetcher.EXPECT().GetPostAttachments(gomock.Any(), "1_2").Return(nil, errors.New("connection reset"))

	post := domain.Post{ID: "1_2", Attachments: list(photo("https://example.com/a.jpg", ""))}

	got := NewExtractor(fetcher, logger.Nop()).Candidates(context.Background(), post)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, got)
}

func TestCandidatesWithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_facebook.NewMockClient(ctrl)

	got := NewExtractor(fetcher, logger.Nop()).Candidates(context.Background(), domain.Post{FullPicture: "https://example.com/a.jpg"})
	assert.Equal(t, []string{"https://example.com/a.jpg"}, got)
}

func TestImagesSingleCDNPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_facebook.NewMockClient(ctrl)
	fetcher.EXPECT().GetPostAttachments(gomock.Any(), "1_3").Return([]domain.Attachment{}, nil)

	picture := "https://cdn.example/scontent/img_1_n.jpg?x=1&dst-jpg_p100x100=y"
	images := NewExtractor(fetcher, logger.Nop()).Images(context.Background(), domain.Post{ID: "1_3", FullPicture: picture})

	assert.Equal(t, []string{picture}, images)
	assert.Equal(t, "https://cdn.example/scontent/img_1_n.jpg?dst-jpg_p100x100=y", Normalize(images[0]))
}

func TestImagesTwoPhotoAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock_facebook.NewMockClient(ctrl)
	fetcher.EXPECT().GetPostAttachments(gomock.Any(), "1_4").Return(nil, errors.New("timeout"))

	first := "https://example.com/first.jpg"
	second := "https://example.com/second.jpg"
	post := domain.Post{ID: "1_4", Attachments: list(photo(first, ""), photo(second, ""))}

	images := NewExtractor(fetcher, logger.Nop()).Images(context.Background(), post)
	assert.Equal(t, []string{first, second}, images)
}

func TestImagesDropsPermalinks(t *testing.T) {
	post := domain.Post{Attachments: list(
		photo("https://www.facebook.com/265760324323651/posts/42", "https://scontent.xx.fbcdn.net/v/a_n.jpg?oh=1"),
		photo("https://www.facebook.com/photo.php?fbid=7", "https://scontent.xx.fbcdn.net/v/a_n.jpg?oh=2"),
	)}

	images := NewExtractor(nil, logger.Nop()).Images(context.Background(), post)
	assert.Equal(t, []string{"https://scontent.xx.fbcdn.net/v/a_n.jpg?oh=1"}, images)
}
