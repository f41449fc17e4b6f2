package domain

import (
	"strings"
	"testing"
)

func TestCanonicalImage_Validate(t *testing.T) {
	t.Run("正常な画像は検証を通過するのだ", func(t *testing.T) {
		img := CanonicalImage{MimeType: "image/png", Data: []byte{0x89, 0x50}}
		if err := img.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("ペイロードが空ならエラーなのだ", func(t *testing.T) {
		img := CanonicalImage{MimeType: "image/png"}
		if err := img.Validate(); err == nil {
			t.Error("expected error for empty payload")
		}
	})

	t.Run("type/subtype 形式でない MIME はエラーなのだ", func(t *testing.T) {
		for _, mime := range []string{"", "png", "image/", "/png"} {
			img := CanonicalImage{MimeType: mime, Data: []byte{1}}
			if err := img.Validate(); err == nil {
				t.Errorf("expected error for mime %q", mime)
			}
		}
	})
}

func TestCanonicalImage_DataURL(t *testing.T) {
	img := CanonicalImage{MimeType: "image/jpeg", Data: []byte("jpeg-bytes")}
	got := img.DataURL()

	if !strings.HasPrefix(got, "data:image/jpeg;base64,") {
		t.Errorf("data URL header is incorrect: %s", got)
	}
}

func TestImageSource_Ref(t *testing.T) {
	t.Run("RemoteSource は URL を返す", func(t *testing.T) {
		s := RemoteSource{URL: "https://example.com/box.png"}
		if s.Ref() != "https://example.com/box.png" {
			t.Errorf("got %s", s.Ref())
		}
	})

	t.Run("InlineSource はヘッダ部のみ返す", func(t *testing.T) {
		s := InlineSource{DataURL: "data:image/png;base64,AAAA"}
		if s.Ref() != "data:image/png;base64" {
			t.Errorf("got %s", s.Ref())
		}
	})

	t.Run("FileSource はファイル名を返す", func(t *testing.T) {
		s := FileSource{Name: "logo.png", Data: []byte{1}}
		if s.Ref() != "logo.png" {
			t.Errorf("got %s", s.Ref())
		}
	})
}
