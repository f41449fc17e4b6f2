package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shouni/gemini-mockup-kit/pkg/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// SourceNormalizer は異種の画像参照（リモートURL・インライン data URL・
// ローカルバイナリ）を CanonicalImage へ正規化します。
// 副作用はリモートURL取得時のトランスポート呼び出しのみです。
type SourceNormalizer struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
}

// NewSourceNormalizer は依存関係を注入して SourceNormalizer を初期化します。
func NewSourceNormalizer(httpClient httpkit.ClientInterface, reader remoteio.InputReader) (*SourceNormalizer, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	return &SourceNormalizer{
		httpClient: httpClient,
		reader:     reader,
	}, nil
}

// Normalize は参照種別ごとの変換を行います。
// 失敗は分類済みエラー（FetchError / MalformedEncodingError）として返します。
func (n *SourceNormalizer) Normalize(ctx context.Context, src domain.ImageSource) (*domain.CanonicalImage, error) {
	switch s := src.(type) {
	case domain.RemoteSource:
		return n.normalizeRemote(ctx, s.URL)
	case domain.InlineSource:
		return parseDataURL(s.DataURL)
	case domain.FileSource:
		return normalizeFile(s)
	default:
		return nil, fmt.Errorf("未対応の画像参照型です: %T", src)
	}
}

func (n *SourceNormalizer) normalizeRemote(ctx context.Context, rawURL string) (*domain.CanonicalImage, error) {
	var data []byte

	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := n.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, &domain.FetchError{URL: rawURL, Err: err}
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			return nil, &domain.FetchError{URL: rawURL, Err: err}
		}
		data = b
	} else {
		if safe, err := IsSafeURL(rawURL); err != nil || !safe {
			slog.WarnContext(ctx, "安全ではないURLをブロックしました", "url", rawURL, "error", err)
			return nil, &domain.FetchError{URL: rawURL, Err: err}
		}
		b, err := n.httpClient.FetchBytes(ctx, rawURL)
		if err != nil {
			return nil, &domain.FetchError{URL: rawURL, Err: err}
		}
		data = b
	}

	img := &domain.CanonicalImage{
		MimeType: http.DetectContentType(data),
		Data:     data,
	}
	if err := img.Validate(); err != nil {
		return nil, &domain.FetchError{URL: rawURL, Err: err}
	}
	return img, nil
}

// parseDataURL は data:<mime>;base64,<body> 形式を解析します。
// 構造セグメント不足・MIMEマーカー欠落・デコード失敗はすべて
// MalformedEncodingError に分類されます。
func parseDataURL(s string) (*domain.CanonicalImage, error) {
	segments := strings.SplitN(s, ",", 2)
	if len(segments) < 2 {
		return nil, &domain.MalformedEncodingError{Reason: "構造セグメントが不足しています"}
	}

	header := segments[0]
	if !strings.HasPrefix(header, "data:") {
		return nil, &domain.MalformedEncodingError{Reason: "data: マーカーがありません"}
	}

	meta := strings.TrimPrefix(header, "data:")
	semi := strings.IndexByte(meta, ';')
	if semi <= 0 {
		return nil, &domain.MalformedEncodingError{Reason: "MIMEタイプのマーカーがありません"}
	}
	mimeType := meta[:semi]

	data, err := base64.StdEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, &domain.MalformedEncodingError{Reason: fmt.Sprintf("base64デコード失敗: %v", err)}
	}

	img := &domain.CanonicalImage{MimeType: mimeType, Data: data}
	if err := img.Validate(); err != nil {
		return nil, &domain.MalformedEncodingError{Reason: err.Error()}
	}
	return img, nil
}

// normalizeFile はユーザー供給のバイナリをそのまま正規形に写します。ネットワークI/Oはありません。
func normalizeFile(s domain.FileSource) (*domain.CanonicalImage, error) {
	mimeType := s.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(s.Data)
	}

	img := &domain.CanonicalImage{MimeType: mimeType, Data: s.Data}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("ファイル %q を正規化できません: %w", s.Name, err)
	}
	return img, nil
}
