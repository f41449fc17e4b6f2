package session

import "github.com/shouni/gemini-mockup-kit/pkg/domain"

// VariantCache は ViewKey → 生成済み画像の挿入順付き連想コンテナです。
// 「最初に挿入されたエントリ」が再生成のベース選択規則として意味を持つため、
// 反復順序を明示的に保持します。コントローラ以外からは変更されません。
type VariantCache struct {
	order   []domain.ViewKey
	entries map[domain.ViewKey]*domain.CanonicalImage
}

// NewVariantCache は空のキャッシュを生成します。
func NewVariantCache() *VariantCache {
	return &VariantCache{
		entries: make(map[domain.ViewKey]*domain.CanonicalImage),
	}
}

// Get は key に対応するエントリを返します。
func (c *VariantCache) Get(key domain.ViewKey) (*domain.CanonicalImage, bool) {
	img, ok := c.entries[key]
	return img, ok
}

// Set は key にエントリを登録します。既存キーへの Set は
// 同一キーを対象とした明示的な再生成成功時のみ許されます（上書きしても挿入順は変わりません）。
func (c *VariantCache) Set(key domain.ViewKey, img *domain.CanonicalImage) {
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = img
}

// First は最初に挿入されたエントリを返します。再生成のベース画像選択に使われます。
func (c *VariantCache) First() (domain.ViewKey, *domain.CanonicalImage, bool) {
	if len(c.order) == 0 {
		return "", nil, false
	}
	key := c.order[0]
	return key, c.entries[key], true
}

// Keys は挿入順のキー一覧のコピーを返します。
func (c *VariantCache) Keys() []domain.ViewKey {
	keys := make([]domain.ViewKey, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len は登録済みエントリ数を返します。
func (c *VariantCache) Len() int {
	return len(c.order)
}

// Clear は全エントリを破棄して空の状態に戻します。
func (c *VariantCache) Clear() {
	c.order = nil
	c.entries = make(map[domain.ViewKey]*domain.CanonicalImage)
}
