package domain

// ViewKey は定義済み視点（アングル）の識別子です。
type ViewKey string

// View は 1 つの視点の定義を保持します。
// Instruction は再生成プロンプトに注入する視点指示文です。
type View struct {
	Key         ViewKey
	Label       string
	Instruction string
}

// DefaultViews は認識される視点の固定シーケンスです。
// 並び順はナビゲーションの隣接関係を定めるだけで、生成結果には影響しません。
// 先頭の視点が初回合成の結果を受け取ります。
var DefaultViews = []View{
	{
		Key:         "front",
		Label:       "正面",
		Instruction: "a straight-on front view at eye level",
	},
	{
		Key:         "angled",
		Label:       "斜め",
		Instruction: "a three-quarter angled view showing the front and one side",
	},
	{
		Key:         "side",
		Label:       "側面",
		Instruction: "a direct side profile view",
	},
	{
		Key:         "top",
		Label:       "俯瞰",
		Instruction: "a top-down view looking at the box from above",
	},
	{
		Key:         "closeup",
		Label:       "ロゴ寄り",
		Instruction: "a close-up view focused on the printed logo area",
	},
}

// FindView は key に一致する View を DefaultViews から探します。
func FindView(key ViewKey) (View, bool) {
	for _, v := range DefaultViews {
		if v.Key == key {
			return v, true
		}
	}
	return View{}, false
}

// FirstViewKey は初回合成結果を割り当てる先頭視点のキーを返します。
func FirstViewKey() ViewKey {
	return DefaultViews[0].Key
}
