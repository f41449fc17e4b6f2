package generator

import (
	"context"

	"github.com/shouni/gemini-mockup-kit/pkg/domain"
)

// Normalizer は異種の画像参照を CanonicalImage へ正規化するインターフェースです。
type Normalizer interface {
	Normalize(ctx context.Context, src domain.ImageSource) (*domain.CanonicalImage, error)
}

// MockupClient はセッション層が利用する生成操作の窓口です。
type MockupClient interface {
	// CompositeLogo はベース画像（箱）にロゴを合成した 1 枚目を生成します。
	CompositeLogo(ctx context.Context, box, logo domain.ImageSource, seed *int64) (*domain.CanonicalImage, error)
	// RegenerateAngle は生成済み画像を基に、指定視点からの再生成を行います。
	RegenerateAngle(ctx context.Context, base *domain.CanonicalImage, instruction string, seed *int64) (*domain.CanonicalImage, error)
}
