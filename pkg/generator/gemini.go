package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-mockup-kit/pkg/domain"
	"github.com/shouni/gemini-mockup-kit/pkg/imgutil"
	"github.com/shouni/gemini-mockup-kit/pkg/utils"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// MockupGenerator は合成（CompositeLogo）と視点再生成（RegenerateAngle）の
// 2 操作を担当する Generation Client です。キャッシュ状態は一切持ちません。
type MockupGenerator struct {
	aiClient   gemini.GenerativeModel
	normalizer Normalizer
	cfg        Config
}

// NewMockupGenerator は依存関係と設定を注入して MockupGenerator を初期化します。
func NewMockupGenerator(aiClient gemini.GenerativeModel, normalizer Normalizer, cfg Config) (*MockupGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if normalizer == nil {
		return nil, fmt.Errorf("normalizer is required")
	}
	return &MockupGenerator{
		aiClient:   aiClient,
		normalizer: normalizer,
		cfg:        cfg.withDefaults(),
	}, nil
}

// CompositeLogo はベース画像（箱）とロゴを正規化し、固定指示文とともに送信して
// ロゴ合成済みの 1 枚目を生成します。Normalizer / Interpreter の失敗は
// 分類を保ったまま呼び出し元へ伝播します（この層でのリトライはしません）。
func (g *MockupGenerator) CompositeLogo(ctx context.Context, box, logo domain.ImageSource, seed *int64) (*domain.CanonicalImage, error) {
	boxImg, err := g.normalizer.Normalize(ctx, box)
	if err != nil {
		return nil, err
	}
	logoImg, err := g.normalizer.Normalize(ctx, logo)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		{Text: compositePrompt},
		g.toPart(boxImg),
		g.toPart(logoImg),
	}

	slog.InfoContext(ctx, "ロゴ合成リクエストを準備中",
		"model", g.cfg.Model, "box", box.Ref(), "logo", logo.Ref(),
		"seed", utils.DereferenceSeed(seed))

	return g.submit(ctx, parts, seed)
}

// RegenerateAngle は生成済み画像（既に正規形）を基に、視点指示文で
// パラメータ化したプロンプトを送信して新しいアングルを生成します。
func (g *MockupGenerator) RegenerateAngle(ctx context.Context, base *domain.CanonicalImage, instruction string, seed *int64) (*domain.CanonicalImage, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("再生成ベース画像が不正です: %w", err)
	}

	parts := []*genai.Part{
		{Text: anglePrompt(instruction)},
		g.toPart(base),
	}

	slog.InfoContext(ctx, "視点再生成リクエストを準備中",
		"model", g.cfg.Model, "instruction", instruction,
		"seed", utils.DereferenceSeed(seed))

	return g.submit(ctx, parts, seed)
}

// submit は通信と応答解釈の共通ロジックです。
func (g *MockupGenerator) submit(ctx context.Context, parts []*genai.Part, seed *int64) (*domain.CanonicalImage, error) {
	opts := gemini.GenerateOptions{
		AspectRatio: g.cfg.AspectRatio,
		Seed:        seed,
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.cfg.Model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("生成リクエストに失敗しました: %w", err)
	}

	return InterpretResponse(resp)
}

// toPart はリクエスト画像を genai.Part (InlineData) へ変換します。
// 閾値を超えるペイロードは送信前に JPEG へ再圧縮します。圧縮に失敗した場合は元データのまま送ります。
func (g *MockupGenerator) toPart(img *domain.CanonicalImage) *genai.Part {
	data := img.Data
	mimeType := img.MimeType

	if UseImageCompression && imgutil.ShouldCompress(data, g.cfg.InlinePayloadLimit) {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			data = compressed
			mimeType = "image/jpeg"
		}
	}

	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}
}
