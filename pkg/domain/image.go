package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// CanonicalImage は生成・表示の全工程で共通利用する画像の正規形です。
// MIME タイプとバイナリ本体のみを持ち、セッションを超えて永続化されません。
type CanonicalImage struct {
	MimeType string
	Data     []byte
}

// Validate は CanonicalImage の不変条件（type/subtype 形式の MIME と非空ペイロード）を検証します。
func (c *CanonicalImage) Validate() error {
	if c == nil {
		return fmt.Errorf("CanonicalImage が nil です")
	}
	if len(c.Data) == 0 {
		return fmt.Errorf("画像ペイロードが空です")
	}
	parts := strings.SplitN(c.MimeType, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("MIMEタイプの形式が不正です: %q", c.MimeType)
	}
	return nil
}

// DataURL は表示用の data URL 表現を返します。
func (c *CanonicalImage) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", c.MimeType, base64.StdEncoding.EncodeToString(c.Data))
}

// ImageSource は Normalizer に渡す画像参照の共通インターフェースです。
// Ref はログ・表示用の参照文字列を返します。
type ImageSource interface {
	Ref() string
}

// RemoteSource は http(s) または gs:// で取得するリモート画像参照です。
type RemoteSource struct {
	URL string
}

func (s RemoteSource) Ref() string { return s.URL }

// InlineSource は data URL としてエンコード済みのインライン画像です。
type InlineSource struct {
	DataURL string
}

func (s InlineSource) Ref() string {
	// data URL は長大になるためヘッダ部のみを参照として返す
	if i := strings.IndexByte(s.DataURL, ','); i > 0 {
		return s.DataURL[:i]
	}
	return s.DataURL
}

// FileSource はユーザーが直接供給したバイナリファイルです。
// MimeType が空の場合は Normalizer 側で内容から判定します。
type FileSource struct {
	Name     string
	MimeType string
	Data     []byte
}

func (s FileSource) Ref() string { return s.Name }
