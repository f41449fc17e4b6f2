package generator

const (
	// UseImageCompression は送信前のインライン画像圧縮を有効にします。
	UseImageCompression     = true
	ImageCompressionQuality = 75

	// defaultInlinePayloadLimit を超えるリクエスト画像は JPEG へ再圧縮されます。
	defaultInlinePayloadLimit = 4 << 20

	DefaultModel       = "gemini-2.5-flash-image"
	DefaultAspectRatio = "1:1"
)

// Config は Generation Client の明示的な設定です。
// モデル名や資格情報をグローバル状態に置かず、常に注入して使います。
type Config struct {
	Model              string
	AspectRatio        string
	InlinePayloadLimit int
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.AspectRatio == "" {
		c.AspectRatio = DefaultAspectRatio
	}
	if c.InlinePayloadLimit <= 0 {
		c.InlinePayloadLimit = defaultInlinePayloadLimit
	}
	return c
}
