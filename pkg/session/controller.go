package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/gemini-mockup-kit/pkg/domain"
	"github.com/shouni/gemini-mockup-kit/pkg/generator"
)

var (
	// ErrRequestInFlight は単一実行ゲートによる拒否です。進行中の操作は 1 つまでで、
	// 後続の呼び出しはキューイングされず拒否されます。
	ErrRequestInFlight = errors.New("生成リクエストが進行中です")
	// ErrUnknownView は定義外の視点キーが指定されたことを表します。
	ErrUnknownView = errors.New("未定義の視点キーです")
	// ErrNoActiveSession はセッション開始前に視点切替が要求されたことを表します。
	ErrNoActiveSession = errors.New("アクティブなセッションがありません")
)

const (
	pendingMsgComposite = "ロゴを箱に合成しています…"
	pendingMsgAngleFmt  = "%s アングルを生成しています…"
)

// Displayed は表示解決の結果です。Image が nil の場合は Source（元のベース参照）を表示します。
type Displayed struct {
	Image  *domain.CanonicalImage
	Source domain.ImageSource
}

// Snapshot はプレゼンテーション層へ渡す読み取り専用のビューモデルです。
type Snapshot struct {
	Active         bool
	Pending        bool
	PendingMessage string
	SelectedView   domain.ViewKey
	GeneratedViews []domain.ViewKey
	LastError      error
	Displayed      Displayed
}

// Controller はセッション状態機械の本体です。ベース画像・ロゴの選択、
// 生成済みバリアントのキャッシュ、選択中視点、進行中フラグを一元管理します。
// 1 セッションにつき 1 インスタンスで、キャッシュを変更するのはこの型だけです。
type Controller struct {
	client generator.MockupClient
	views  []domain.View
	seed   *int64

	mu             sync.Mutex
	boxSource      domain.ImageSource
	logoSource     domain.ImageSource
	cache          *VariantCache
	selected       domain.ViewKey
	pending        bool
	pendingMessage string
	lastErr        error
}

// NewController は依存関係を注入して Controller を初期化します。
// views が空の場合は domain.DefaultViews を使用します。
// seed は再現性が必要な場合のみ指定します（nil でランダム）。
func NewController(client generator.MockupClient, views []domain.View, seed *int64) (*Controller, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if len(views) == 0 {
		views = domain.DefaultViews
	}
	return &Controller{
		client: client,
		views:  views,
		seed:   seed,
		cache:  NewVariantCache(),
	}, nil
}

// Views は認識される視点の固定シーケンスを返します。
func (c *Controller) Views() []domain.View {
	return c.views
}

// Start は新しいベース画像 + ロゴの組を受理し、初回合成を実行します。
// 成功時は先頭視点にキャッシュを種付けして選択します。
// 失敗時はセッション全体を巻き戻します（ベース・ロゴの選択も破棄され、
// アクティブ状態には到達しません）。
func (c *Controller) Start(ctx context.Context, box, logo domain.ImageSource) error {
	if box == nil || logo == nil {
		return fmt.Errorf("box と logo の両方が必要です")
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrRequestInFlight
	}
	// 新しい組の受理: キャッシュは空から作り直す
	c.boxSource = box
	c.logoSource = logo
	c.cache.Clear()
	c.selected = ""
	c.lastErr = nil
	c.pending = true
	c.pendingMessage = pendingMsgComposite
	c.mu.Unlock()

	img, err := c.client.CompositeLogo(ctx, box, logo, c.seed)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.pendingMessage = ""

	if err != nil {
		// 初回失敗は使える成果物が何もないため、全面的に巻き戻す
		c.boxSource = nil
		c.logoSource = nil
		c.cache.Clear()
		c.selected = ""
		c.lastErr = err
		slog.WarnContext(ctx, "初回合成に失敗しました。セッションを破棄します", "error", err)
		return err
	}

	first := c.views[0].Key
	c.cache.Set(first, img)
	c.selected = first
	slog.InfoContext(ctx, "セッションを開始しました", "first_view", string(first))
	return nil
}

// SelectView は視点を切り替えます。
//   - 選択中と同じ視点、または進行中のリクエストがある場合は何もしません。
//   - キャッシュヒット時はネットワーク呼び出しなしで即座に切り替えます。
//   - キャッシュミス時は最初に生成されたエントリをベースに再生成します。
//     切替は楽観的に先行反映し、失敗時は直前の視点へ巻き戻します
//     （キャッシュは変更されません）。
func (c *Controller) SelectView(ctx context.Context, key domain.ViewKey) error {
	view, ok := c.findView(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, key)
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrRequestInFlight
	}
	if key == c.selected {
		c.mu.Unlock()
		return nil
	}
	if _, hit := c.cache.Get(key); hit {
		c.selected = key
		c.mu.Unlock()
		return nil
	}
	_, base, ok := c.cache.First()
	if !ok {
		c.mu.Unlock()
		return ErrNoActiveSession
	}
	previous := c.selected
	c.selected = key // 楽観的切替。UI は即座に意図を反映する
	c.pending = true
	c.pendingMessage = fmt.Sprintf(pendingMsgAngleFmt, view.Label)
	c.mu.Unlock()

	img, err := c.client.RegenerateAngle(ctx, base, view.Instruction, c.seed)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.pendingMessage = ""

	if err != nil {
		c.selected = previous
		c.lastErr = err
		slog.WarnContext(ctx, "視点再生成に失敗しました。選択を巻き戻します",
			"view", string(key), "rolled_back_to", string(previous), "error", err)
		return err
	}

	c.cache.Set(key, img)
	c.lastErr = nil
	return nil
}

// SelectViewIndex は視点シーケンス上の位置指定で SelectView を呼び出します。
func (c *Controller) SelectViewIndex(ctx context.Context, index int) error {
	if index < 0 || index >= len(c.views) {
		return fmt.Errorf("%w: index %d", ErrUnknownView, index)
	}
	return c.SelectView(ctx, c.views[index].Key)
}

// Reset はセッションを開始前の状態へ戻します。進行中のリクエストがある場合は拒否します。
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return ErrRequestInFlight
	}
	c.boxSource = nil
	c.logoSource = nil
	c.cache.Clear()
	c.selected = ""
	c.lastErr = nil
	return nil
}

// Snapshot は現在状態から導出したビューモデルを返します。
// Displayed は cache[selected] → 最初の挿入エントリ → 元のベース参照の順で解決されるため、
// ベース参照かキャッシュのどちらかが存在する限り必ず表示対象が定まります。
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Active:         c.cache.Len() > 0,
		Pending:        c.pending,
		PendingMessage: c.pendingMessage,
		SelectedView:   c.selected,
		GeneratedViews: c.cache.Keys(),
		LastError:      c.lastErr,
		Displayed:      c.resolveDisplayedLocked(),
	}
}

func (c *Controller) resolveDisplayedLocked() Displayed {
	if img, ok := c.cache.Get(c.selected); ok {
		return Displayed{Image: img}
	}
	if _, img, ok := c.cache.First(); ok {
		return Displayed{Image: img}
	}
	return Displayed{Source: c.boxSource}
}

func (c *Controller) findView(key domain.ViewKey) (domain.View, bool) {
	for _, v := range c.views {
		if v.Key == key {
			return v, true
		}
	}
	return domain.View{}, false
}
